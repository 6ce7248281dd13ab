package domain

import (
	"fmt"
	"strings"
)

// View 身体视图（正面/背面），每个视图有独立的图片资源和热点目录
type View string

const (
	ViewFront View = "front"
	ViewBack  View = "back"
)

// Views 按固定顺序返回所有支持的视图
func Views() []View {
	return []View{ViewFront, ViewBack}
}

// ParseView 解析外部输入（大小写、首尾空格不敏感）
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewFront:
		return ViewFront, nil
	case ViewBack:
		return ViewBack, nil
	default:
		return "", fmt.Errorf("unknown body view %q", s)
	}
}

// Valid reports whether v is one of the supported views.
func (v View) Valid() bool {
	return v == ViewFront || v == ViewBack
}

// Title 用于展示和 notes 文本（"Front" / "Back"）
func (v View) Title() string {
	switch v {
	case ViewFront:
		return "Front"
	case ViewBack:
		return "Back"
	default:
		return string(v)
	}
}
