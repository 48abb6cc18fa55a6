package domain

type WishlistItem struct {
	Item
}

type WishlistState struct {
	Items     []WishlistItem `json:"items"`
	IsLoading bool           `json:"isLoading"`
	Error     *string        `json:"error"`
}
