package mapper

import (
	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
)

type SystemMessageMapper struct{}

func NewSystemMessageMapper() *SystemMessageMapper {
	return &SystemMessageMapper{}
}

func (m *SystemMessageMapper) ToDto(e *entity.SystemMessage) *dto.SystemMessageDto {
	if e == nil {
		return nil
	}
	return &dto.SystemMessageDto{
		MsgId:          e.MsgId,
		EnglishText:    e.EnglishText,
		VietnameseText: e.VietnameseText,
	}
}

func (m *SystemMessageMapper) ToEntity(d *dto.SystemMessageDto) *entity.SystemMessage {
	if d == nil {
		return nil
	}
	return &entity.SystemMessage{
		MsgId:          d.MsgId,
		EnglishText:    d.EnglishText,
		VietnameseText: d.VietnameseText,
	}
}

func (m *SystemMessageMapper) MapOnto(d *dto.SystemMessageDto, e *entity.SystemMessage) {
	e.EnglishText = d.EnglishText
	e.VietnameseText = d.VietnameseText
}
