package archive

import "github.com/shopspring/decimal"

// ProductRequest carries product master data from the API layer
type ProductRequest struct {
	Name   string          `json:"name" binding:"required,notblank"`
	Spec   string          `json:"spec"`
	Unit   string          `json:"unit"`
	Price  decimal.Decimal `json:"price"`
	Remark string          `json:"remark"`
}

// PartnerRequest carries customer or supplier master data
type PartnerRequest struct {
	Name          string `json:"name" binding:"required,notblank"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Remark        string `json:"remark"`
}
