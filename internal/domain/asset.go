package domain

import "github.com/shopspring/decimal"

// AssetClass labels the broad category of an asset. The named constants
// cover the classes the app suggests; any other string is accepted as a
// free-form class.
type AssetClass string

const (
	ClassFixedIncome    AssetClass = "Renda Fixa"
	ClassVariableIncome AssetClass = "Renda Variável"
	ClassFund           AssetClass = "Fundo"
)

// Known reports whether the class is one of the suggested categories.
func (c AssetClass) Known() bool {
	switch c {
	case ClassFixedIncome, ClassVariableIncome, ClassFund:
		return true
	}
	return false
}

// Risk grades how risky an asset is.
type Risk string

const (
	RiskLow    Risk = "Baixo"
	RiskMedium Risk = "Médio"
	RiskHigh   Risk = "Alto"
)

func (r Risk) Known() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Liquidity grades how quickly an asset converts back to cash.
type Liquidity string

const (
	LiquidityLow    Liquidity = "Baixa"
	LiquidityMedium Liquidity = "Média"
	LiquidityHigh   Liquidity = "Alta"
)

func (l Liquidity) Known() bool {
	switch l {
	case LiquidityLow, LiquidityMedium, LiquidityHigh:
		return true
	}
	return false
}

// Asset is one financial holding in a user's ledger. The ID is unique
// within the ledger and never changes after creation.
type Asset struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	AssetClass     AssetClass      `json:"assetClass"`
	Description    string          `json:"description"`
	Risk           Risk            `json:"risk"`
	ReturnRate     decimal.Decimal `json:"returnRate"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	Liquidity      Liquidity       `json:"liquidity"`
}
