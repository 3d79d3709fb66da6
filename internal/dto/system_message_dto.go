package dto

type SystemMessageDto struct {
	MsgId          string `json:"msg_id" validate:"required,max=50"`
	EnglishText    string `json:"english_text" validate:"required,max=1500"`
	VietnameseText string `json:"vietnamese_text,omitempty" validate:"omitempty,max=1500"`
}
