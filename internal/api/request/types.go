package request

// Monetary amounts travel as strings and are parsed into exact
// decimals by the handlers, so clients never round-trip floats.

// StartGameRequest is the request body for starting a game
type StartGameRequest struct {
	BuyIn string `json:"buy_in"`
}

// AddPlayerRequest is the request body for seating a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// SetBuyInStatusRequest is the request body for marking a buy-in
type SetBuyInStatusRequest struct {
	Status string `json:"status"`
}

// AddRebuyRequest is the request body for recording a rebuy
type AddRebuyRequest struct {
	Amount string `json:"amount"`
}

// SubmitCashoutRequest is the request body for declaring a cashout
type SubmitCashoutRequest struct {
	Amount string `json:"amount"`
}
