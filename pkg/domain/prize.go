package domain

// Prize is one segment of the wheel as configured in the admin console.
type Prize struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Level    string  `json:"level,omitempty"`
	Stock    int     `json:"stock,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Remark   string  `json:"remark,omitempty"`
}

// PrizePage is one page of the prize list.
type PrizePage struct {
	Rows  []Prize `json:"rows"`
	Total int     `json:"total"`
}
