// C:\Users\kouji\デスクトップ\KRS\model\customer_types.go
package model

type Customer struct {
	CustomerCode string `db:"customer_code" json:"customerCode"`
	CustomerName string `db:"customer_name" json:"customerName"`
	KanaName     string `db:"kana_name" json:"kanaName"`
	PostalCode   string `db:"postal_code" json:"postalCode"`
	Address      string `db:"address" json:"address"`
	Phone        string `db:"phone" json:"phone"`
	Fax          string `db:"fax" json:"fax"`
	Note         string `db:"note" json:"note"`
}

type Machine struct {
	ID           int    `db:"id" json:"id"`
	CustomerCode string `db:"customer_code" json:"customerCode"`
	MakerName    string `db:"maker_name" json:"makerName"`
	ModelName    string `db:"model_name" json:"modelName"`
	SerialNumber string `db:"serial_number" json:"serialNumber"`
	MachineType  string `db:"machine_type" json:"machineType"`
	Note         string `db:"note" json:"note"`
}
