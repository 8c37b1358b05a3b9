package types

// 构造配置指针字段的辅助函数

// StringPtr 返回字符串指针
func StringPtr(v string) *string { return &v }

// IntPtr 返回整数指针
func IntPtr(v int) *int { return &v }

// BoolPtr 返回布尔指针
func BoolPtr(v bool) *bool { return &v }

// Uint64Ptr 返回uint64指针
func Uint64Ptr(v uint64) *uint64 { return &v }
