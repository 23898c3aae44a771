package packets

// body for adding a mosque to the directory. Coordinates are pointers
// so 0.0 survives the required check.
type CreateMosqueRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Description *string  `json:"description"`
	Address     string   `json:"address" binding:"required,min=1,max=255"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Latitude    *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Website     *string  `json:"website"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"image_url"`
}

// body for a partial update; omitted fields keep their stored value.
type UpdateMosqueRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Address     *string  `json:"address" binding:"omitempty,min=1,max=255"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Website     *string  `json:"website"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"image_url"`
}

// body for publishing prayer times; omitted fields keep their stored value.
type UpdatePrayerTimesRequest struct {
	Fajr    *string `json:"fajr"`
	Dhuhr   *string `json:"dhuhr"`
	Asr     *string `json:"asr"`
	Maghrib *string `json:"maghrib"`
	Isha    *string `json:"isha"`
}
