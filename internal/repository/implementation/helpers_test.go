package implementation

import (
	"reflect"
	"testing"

	"elibrary-be/internal/repository/contract"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func mustSchema[T any, K comparable](t *testing.T, repo contract.Repository[T, K]) *schema.Schema {
	t.Helper()
	impl, ok := repo.(*GenericRepositoryImpl[T, K])
	require.True(t, ok)
	sch, err := impl.parse()
	require.NoError(t, err)
	return sch
}

func valueOf(v interface{}) reflect.Value {
	return reflect.ValueOf(v)
}
