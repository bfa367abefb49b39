package dto

type EnqueueRequest struct {
	Name        string `json:"name"`
	CommandText string `json:"command_text"`
}

type EnqueueResponse struct {
	Message   string `json:"message"`
	CommandID uint   `json:"command_id"`
}

// OrderResponse is what a polling agent receives. CommandID is null and
// CommandText carries the sentinel when the mailbox is empty.
type OrderResponse struct {
	CommandID   *uint  `json:"command_id"`
	CommandText string `json:"command_text"`
}

// NoOrdersText is the empty-mailbox sentinel payload.
const NoOrdersText = "No pending orders"

type StoreResponseRequest struct {
	Name         string `json:"name"`
	CommandID    uint   `json:"command_id"`
	ResponseText string `json:"response_text"`
}

type ResponsePayload struct {
	ResponseText string `json:"response_text"`
}
