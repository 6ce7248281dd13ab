package domain

// HotspotDefinition 热点定义（目录只读数据）
type HotspotDefinition struct {
	GroupID         int            `json:"group_id"`
	DisplayName     string         `json:"display_name"`
	BoundingBox     NormalizedRect `json:"bounding_box"`
	IsDetailVariant bool           `json:"is_detail_variant,omitempty"`
}

// Match 一次成功解析的结果；由调用方据此创建 PainArea
type Match struct {
	DisplayName     string         `json:"display_name"`
	GroupID         int            `json:"group_id"`
	IsDetailVariant bool           `json:"is_detail_variant"`
	View            View           `json:"view"`
	Click           DisplayedPoint `json:"click"`
	Displayed       DisplayedSize  `json:"displayed"`
	Distance        float64        `json:"distance"`
}
