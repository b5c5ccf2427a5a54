package request

// Coordinates are pointers so that an omitted field is distinguishable from
// an explicit 0; a shop silently placed at (0, 0) would rank in every search.
type CreateShopRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type CreateMedicineRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}
