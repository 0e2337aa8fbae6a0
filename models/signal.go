package models

import (
	"github.com/shopspring/decimal"
)

type Horizon string

const (
	HorizonShort Horizon = "SHORT_TERM"
	HorizonMid   Horizon = "MID_TERM"
	HorizonLong  Horizon = "LONG_TERM"
)

// Horizons lists every horizon in board order.
var Horizons = []Horizon{HorizonShort, HorizonMid, HorizonLong}

func ParseHorizon(s string) (Horizon, bool) {
	switch Horizon(s) {
	case HorizonShort, HorizonMid, HorizonLong:
		return Horizon(s), true
	}
	return "", false
}

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionBuy, ActionSell, ActionHold:
		return Action(s), true
	}
	return "", false
}

// TradeSignal is immutable once published. Timestamp is Unix milliseconds.
type TradeSignal struct {
	ID              string           `json:"id" gorm:"primaryKey"`
	Ticker          string           `json:"ticker" gorm:"index"`
	Name            string           `json:"name"`
	Sector          string           `json:"sector"`
	Horizon         Horizon          `json:"horizon" gorm:"index"`
	Action          Action           `json:"action"`
	Probability     int              `json:"probability"`
	Reasoning       string           `json:"reasoning"`
	CatalystKeyword string           `json:"catalystKeyword"`
	Timestamp       int64            `json:"timestamp"`
	EntryPrice      *decimal.Decimal `json:"entryPrice,omitempty" gorm:"type:decimal(20,8)"`
	StopLoss        *decimal.Decimal `json:"stopLoss,omitempty" gorm:"type:decimal(20,8)"`
}

// AnalysisResult is the raw classifier output. Any field may be missing.
type AnalysisResult struct {
	Ticker          *string `json:"ticker,omitempty"`
	Name            *string `json:"name,omitempty"`
	Sector          *string `json:"sector,omitempty"`
	Horizon         *string `json:"horizon,omitempty"`
	Action          *string `json:"action,omitempty"`
	Probability     *int    `json:"probability,omitempty"`
	Reasoning       *string `json:"reasoning,omitempty"`
	CatalystKeyword *string `json:"catalystKeyword,omitempty"`
}
