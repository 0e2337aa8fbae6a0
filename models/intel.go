package models

type Source string

const (
	SourceTruthSocial Source = "TRUTH_SOCIAL"
	SourceTwitter     Source = "TWITTER"
	SourceOfficialWH  Source = "OFFICIAL_WH"
)

// IntelItem is a piece of monitored text. RelatedSignalID is a lookup link only.
type IntelItem struct {
	ID              string  `json:"id" gorm:"primaryKey"`
	Source          Source  `json:"source"`
	Author          string  `json:"author"`
	Content         string  `json:"content"`
	Timestamp       int64   `json:"timestamp"`
	Analyzed        bool    `json:"analyzed" gorm:"index"`
	RelatedSignalID *string `json:"relatedSignalId,omitempty"`
}
