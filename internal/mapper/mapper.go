package mapper

// Mapper converts between a storage entity T and its transfer representation D.
// Conversions are lossless for every field a service reads or writes.
type Mapper[T any, D any] interface {
	ToDto(entity *T) *D
	ToEntity(dto *D) *T
	// MapOnto copies the writable fields of dto onto entity. The key and
	// store-managed timestamps are never overwritten.
	MapOnto(dto *D, entity *T)
}

func ToDtos[T any, D any](m Mapper[T, D], entities []*T) []D {
	dtos := make([]D, 0, len(entities))
	for _, e := range entities {
		if d := m.ToDto(e); d != nil {
			dtos = append(dtos, *d)
		}
	}
	return dtos
}
