package service

import (
	"context"
	"fmt"

	"elibrary-be/internal/dto"
	"elibrary-be/internal/entity"
	"elibrary-be/internal/mapper"
	"elibrary-be/internal/repository/unitofwork"
)

// SystemMessageEntity is the display name of the message catalog entity. Its
// change events are named after it (SYSTEM_MESSAGE_UPDATED, ...).
const SystemMessageEntity = "System Message"

type ISystemMessageService = IGenericService[entity.SystemMessage, dto.SystemMessageDto, string]

func NewSystemMessageService(deps Dependencies) ISystemMessageService {
	return NewGenericService(deps, EntityConfig[entity.SystemMessage, dto.SystemMessageDto, string]{
		EntityName: SystemMessageEntity,
		Mapper:     mapper.NewSystemMessageMapper(),
		KeyOf:      func(e *entity.SystemMessage) string { return e.MsgId },
		Rules:      systemMessageRules{},
	})
}

type systemMessageRules struct{}

func (systemMessageRules) CheckCreate(ctx context.Context, uow unitofwork.UnitOfWork, msg *entity.SystemMessage) (map[string][]string, error) {
	existing, err := uow.SystemMessageRepository().GetById(ctx, msg.MsgId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return map[string][]string{"msg_id": {fmt.Sprintf("message %s already exists", msg.MsgId)}}, nil
	}
	return nil, nil
}

func (systemMessageRules) CheckUpdate(ctx context.Context, uow unitofwork.UnitOfWork, msg *entity.SystemMessage) (map[string][]string, error) {
	return nil, nil
}

func (systemMessageRules) CheckDelete(ctx context.Context, uow unitofwork.UnitOfWork, msg *entity.SystemMessage) (map[string][]string, error) {
	return nil, nil
}
