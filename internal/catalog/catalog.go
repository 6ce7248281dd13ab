// Package catalog holds the static hotspot tables for the front and back body views.
//
// Tables are package-level data and are never handed out directly: every accessor
// returns a copy so resolver or handler code cannot mutate them.
package catalog

import (
	"fmt"

	"spine-intake/internal/domain"
)

// ListHotspots returns the ordered hotspots for view. Order is the catalog
// definition order and is what the resolver uses to break distance ties.
// An unsupported view is a programming error and panics.
func ListHotspots(view domain.View) []domain.HotspotDefinition {
	src := table(view)
	out := make([]domain.HotspotDefinition, len(src))
	copy(out, src)
	return out
}

// Lookup 按显示名称查找热点
func Lookup(view domain.View, displayName string) (domain.HotspotDefinition, bool) {
	for _, h := range table(view) {
		if h.DisplayName == displayName {
			return h, true
		}
	}
	return domain.HotspotDefinition{}, false
}

// Group 粗粒度解剖区域
type Group struct {
	ID   int    `json:"group_id"`
	Name string `json:"name"`
}

// Groups 返回视图中出现的分组（按目录中首次出现的顺序）
func Groups(view domain.View) []Group {
	names := groupNames[view]
	seen := make(map[int]bool)
	var out []Group
	for _, h := range table(view) {
		if seen[h.GroupID] {
			continue
		}
		seen[h.GroupID] = true
		out = append(out, Group{ID: h.GroupID, Name: names[h.GroupID]})
	}
	return out
}

// GroupName 返回分组名称；未知分组返回空字符串
func GroupName(view domain.View, groupID int) string {
	return groupNames[view][groupID]
}

func table(view domain.View) []domain.HotspotDefinition {
	switch view {
	case domain.ViewFront:
		return frontHotspots
	case domain.ViewBack:
		return backHotspots
	default:
		panic(fmt.Sprintf("catalog: unsupported view %q", view))
	}
}

var groupNames = map[domain.View]map[int]string{
	domain.ViewFront: {
		1:  "Head and Face",
		2:  "Anterior Neck",
		3:  "Right Shoulder",
		4:  "Left Shoulder",
		5:  "Chest",
		6:  "Abdomen",
		7:  "Pelvis and Groin",
		8:  "Right Upper Arm",
		9:  "Left Upper Arm",
		10: "Right Elbow",
		11: "Left Elbow",
		12: "Right Forearm",
		13: "Left Forearm",
		14: "Right Wrist",
		15: "Left Wrist",
		16: "Right Hand",
		17: "Left Hand",
		18: "Right Thigh",
		19: "Left Thigh",
		20: "Right Knee",
		21: "Left Knee",
		22: "Right Shin",
		23: "Left Shin",
		24: "Right Ankle",
		25: "Left Ankle",
		26: "Right Foot",
		27: "Left Foot",
	},
	domain.ViewBack: {
		101: "Back of Head",
		102: "Cervical Spine",
		103: "Thoracic Spine",
		104: "Lumbar Spine",
		105: "Sacrum and Coccyx",
		106: "Left Posterior Shoulder",
		107: "Right Posterior Shoulder",
		108: "Left Scapula",
		109: "Right Scapula",
		110: "Left Mid Back",
		111: "Right Mid Back",
		112: "Left Lower Back",
		113: "Right Lower Back",
		114: "Left Buttock and SI Joint",
		115: "Right Buttock and SI Joint",
		116: "Left Posterior Upper Arm",
		117: "Right Posterior Upper Arm",
		118: "Left Elbow",
		119: "Right Elbow",
		120: "Left Posterior Forearm",
		121: "Right Posterior Forearm",
		122: "Left Wrist",
		123: "Right Wrist",
		124: "Left Hand",
		125: "Right Hand",
		126: "Left Hamstring",
		127: "Right Hamstring",
		128: "Left Back of Knee",
		129: "Right Back of Knee",
		130: "Left Calf",
		131: "Right Calf",
		132: "Left Achilles",
		133: "Right Achilles",
		134: "Left Heel",
		135: "Right Heel",
		136: "Left Sole",
		137: "Right Sole",
	},
}
