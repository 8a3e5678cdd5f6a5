package models

import (
	"encoding/json"
	"fmt"
)

// FlexID là định danh chấp nhận cả chuỗi lẫn số từ wire format.
// Backend trả về ID dạng số cho resource tự tạo và dạng chuỗi cho dữ liệu
// seed, nên decode phải chấp nhận cả hai rồi chuẩn hóa về chuỗi.
type FlexID string

// UnmarshalJSON decode ID từ chuỗi hoặc số
func (f *FlexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexID(n.String())
		return nil
	}

	return fmt.Errorf("không decode được id: %s", string(b))
}

// String trả về giá trị chuỗi của ID
func (f FlexID) String() string {
	return string(f)
}
