package service

import "encoding/json"

// NullableString 区分"未提供"与显式 null，用于部分更新
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// SetString 构造一个已提供的值
func SetString(v string) NullableString {
	return NullableString{Set: true, Value: &v}
}

// SetNull 构造一个显式 null
func SetNull() NullableString {
	return NullableString{Set: true}
}
