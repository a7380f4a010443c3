package model

// Cafe is one row in the cafe table. The json tags are the wire contract:
// every field is serialized flat under exactly these keys.
type Cafe struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"size:250;uniqueIndex;not null"`
	MapURL       string  `json:"map_url" gorm:"size:500;not null"`
	ImgURL       string  `json:"img_url" gorm:"size:500;not null"`
	Location     string  `json:"location" gorm:"size:250;not null"`
	Seats        string  `json:"seats" gorm:"size:250;not null"`
	HasToilet    bool    `json:"has_toilet" gorm:"not null"`
	HasWifi      bool    `json:"has_wifi" gorm:"not null"`
	HasSockets   bool    `json:"has_sockets" gorm:"not null"`
	CanTakeCalls bool    `json:"can_take_calls" gorm:"not null"`
	CoffeePrice  *string `json:"coffee_price" gorm:"size:250"`
}

func (Cafe) TableName() string {
	return "cafe"
}
