package message

import (
	"strconv"
	"strings"

	"elibrary-be/internal/dto"
)

type Text struct {
	English    string
	Vietnamese string
}

// Defaults is the built-in catalog. It seeds system_messages and answers when
// the store cannot.
var Defaults = map[dto.ResultCode]Text{
	dto.CodeSuccess:          {English: "Success", Vietnamese: "Thành công"},
	dto.CodeCreateSuccess:    {English: "Create {0} successfully", Vietnamese: "Tạo {0} thành công"},
	dto.CodeUpdateSuccess:    {English: "Update {0} successfully", Vietnamese: "Cập nhật {0} thành công"},
	dto.CodeDeleteSuccess:    {English: "Delete {0} successfully", Vietnamese: "Xóa {0} thành công"},
	dto.CodeNoChanges:        {English: "No changes detected for {0}", Vietnamese: "Không có thay đổi nào cho {0}"},
	dto.CodeNotFound:         {English: "Not found any {0} match", Vietnamese: "Không tìm thấy {0}"},
	dto.CodeNoData:           {English: "No data found", Vietnamese: "Không có dữ liệu"},
	dto.CodeCreateFail:       {English: "Failed to create {0}", Vietnamese: "Tạo {0} thất bại"},
	dto.CodeUpdateFail:       {English: "Failed to update {0}", Vietnamese: "Cập nhật {0} thất bại"},
	dto.CodeDeleteFail:       {English: "Failed to delete {0}", Vietnamese: "Xóa {0} thất bại"},
	dto.CodeValidationFailed: {English: "Invalid inputs", Vietnamese: "Dữ liệu không hợp lệ"},
	dto.CodeForbidden:        {English: "You do not have permission to access this feature", Vietnamese: "Bạn không có quyền truy cập chức năng này"},
}

func (t Text) In(lang Language) string {
	if lang == Vietnamese && t.Vietnamese != "" {
		return t.Vietnamese
	}
	return t.English
}

// Format replaces positional placeholders {0}, {1}, ... with args.
func Format(text string, args ...string) string {
	for i, arg := range args {
		text = strings.ReplaceAll(text, "{"+strconv.Itoa(i)+"}", arg)
	}
	return text
}
