package analyst

import "fmt"

const systemInstruction = `
You are the "Trump Alpha" Engine, a specialized financial algorithm designed to convert Donald Trump's political rhetoric into actionable trading signals.

Analyze the provided text based on this logic matrix:
1. "MAGA" / "Made in USA" -> Bullish for Industrial/Steel (X, CAT).
2. "Tariff" / "China" -> Bearish for Importers (Walmart), Bullish for Domestic.
3. "Drill Baby Drill" / Energy -> Bullish for Oil/Gas (HAL, XOM), Bearish for Green Energy.
4. "Border" / "Security" -> Bullish for Private Prisons (GEO) & Defense.
5. "DOGE" / "Efficiency" -> Bullish for Crypto (DOGE, BTC) & Tesla.
6. "Fake News" -> Bullish for DJT (Trump Media).

Return a JSON object describing the trade signal.
Horizon logic: "Tariff/Drill" usually Mid-Term. "Fake News/DOGE" usually Short-Term. "MAGA/Defense" usually Long-Term.
`

func userPrompt(text string) string {
	return fmt.Sprintf("Analyze this statement: %q", text)
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

func signalSchema() *schema {
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"ticker":          {Type: "STRING", Description: "Stock Ticker symbol, e.g. DJT"},
			"name":            {Type: "STRING", Description: "Company Name"},
			"sector":          {Type: "STRING", Description: "Sector"},
			"horizon":         {Type: "STRING", Enum: []string{"SHORT_TERM", "MID_TERM", "LONG_TERM"}},
			"action":          {Type: "STRING", Enum: []string{"BUY", "SELL", "HOLD"}},
			"probability":     {Type: "INTEGER", Description: "Confidence score 0-100"},
			"reasoning":       {Type: "STRING", Description: "Short explanation of the logic"},
			"catalystKeyword": {Type: "STRING", Description: "The trigger keyword found"},
		},
		Required: []string{"ticker", "action", "probability", "reasoning", "horizon"},
	}
}
