package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	MinIntensity     = 0
	MaxIntensity     = 10
	DefaultIntensity = 5
)

// PainArea 用户在身体图上标记的一个疼痛点
// Region 在创建时从目录复制并冻结，之后目录变化不会影响已有记录。
type PainArea struct {
	ID            string         `json:"id"`
	Region        string         `json:"region"`
	Intensity     int            `json:"intensity"`
	Coordinates   ReferencePoint `json:"coordinates"`
	Frame         *ReferenceSize `json:"frame,omitempty"` // nil: 旧记录，坐标即 overlay 像素
	OriginView    View           `json:"origin_view"`
	SourceGroupID int            `json:"source_group_id"`
	DetailVariant bool           `json:"detail_variant,omitempty"`
	FreeText      string         `json:"free_text,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Notes renders the human-readable note consumed by the summary prompt,
// the email templates and the xlsx report, e.g. "Back view, group 104: worse when sitting".
func (p PainArea) Notes() string {
	var b strings.Builder
	b.WriteString(p.OriginView.Title())
	b.WriteString(" view, group ")
	b.WriteString(strconv.Itoa(p.SourceGroupID))
	if p.DetailVariant {
		b.WriteString(", detail")
	}
	if p.FreeText != "" {
		b.WriteString(": ")
		b.WriteString(p.FreeText)
	}
	return b.String()
}

type painAreaJSON PainArea

// MarshalJSON adds the rendered notes so document consumers that predate the
// structured fields keep working.
func (p PainArea) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		painAreaJSON
		Notes string `json:"notes"`
	}{painAreaJSON(p), p.Notes()})
}

// UnmarshalJSON accepts both the structured form and legacy documents that only
// carry a notes string.
func (p *PainArea) UnmarshalJSON(data []byte) error {
	var raw struct {
		painAreaJSON
		Notes string `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PainArea(raw.painAreaJSON)
	if p.OriginView == "" && raw.Notes != "" {
		legacy := ParseLegacyNotes(raw.Notes)
		p.OriginView = legacy.View
		p.SourceGroupID = legacy.GroupID
		p.DetailVariant = legacy.Detail
		p.FreeText = legacy.FreeText
	}
	return nil
}

// LegacyNote 旧版 notes 字符串解析结果
type LegacyNote struct {
	View     View
	GroupID  int
	Detail   bool
	FreeText string
}

var (
	legacyNotesRe  = regexp.MustCompile(`(?is)^(front|back) view, group (\d+)(, detail)?(?:: (.*))?$`)
	legacyViewRe   = regexp.MustCompile(`(?i)\b(front|back)\b(?:\s+(?:view|image|side))?`)
	legacyGroupRe  = regexp.MustCompile(`(?i)\bgroup[^0-9]{0,3}(\d+)`)
	legacyLeadRe   = regexp.MustCompile(`(?i)^\s*clicked\s+on\b`)
	emptyBracketRe = regexp.MustCompile(`\(\s*\)|\[\s*\]`)
)

const legacySeparators = " \t\r\n,;:-"

// ParseLegacyNotes extracts the view tag, group id and free text from a notes string.
// Strings in the current rendering round-trip exactly; anything else falls back to
// searching for the first view word and group number, and keeps the rest of the
// string without those tags as free text.
func ParseLegacyNotes(notes string) LegacyNote {
	s := strings.TrimSpace(notes)
	if m := legacyNotesRe.FindStringSubmatch(s); m != nil {
		n := LegacyNote{View: View(strings.ToLower(m[1])), Detail: m[3] != "", FreeText: m[4]}
		n.GroupID, _ = strconv.Atoi(m[2])
		return n
	}

	var n LegacyNote
	var tags [][]int
	if m := legacyViewRe.FindStringSubmatchIndex(s); m != nil {
		n.View = View(strings.ToLower(s[m[2]:m[3]]))
		tags = append(tags, m[:2])
	}
	if m := legacyGroupRe.FindStringSubmatchIndex(s); m != nil {
		n.GroupID, _ = strconv.Atoi(s[m[2]:m[3]])
		tags = append(tags, m[:2])
	}
	if len(tags) == 0 {
		n.FreeText = s
		return n
	}
	n.FreeText = stripTags(s, tags)
	return n
}

// stripTags removes the matched spans and the punctuation they leave behind.
func stripTags(s string, spans [][]int) string {
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] > spans[j][0] })
	end := len(s) + 1
	for _, sp := range spans {
		if sp[1] > end {
			continue
		}
		s = s[:sp[0]] + " " + s[sp[1]:]
		end = sp[0]
	}
	s = legacyLeadRe.ReplaceAllString(s, "")
	s = emptyBracketRe.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, legacySeparators)
}

// String 便于日志输出
func (p PainArea) String() string {
	return fmt.Sprintf("%s[%s %d/10]", p.ID, p.Region, p.Intensity)
}
