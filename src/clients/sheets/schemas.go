package sheets

// ValueRange mirrors the Sheets v4 values resource. Cells come back as
// strings or numbers depending on the sheet formatting, hence interface{}.
type ValueRange struct {
	Range          string          `json:"range,omitempty"`
	MajorDimension string          `json:"majorDimension,omitempty"`
	Values         [][]interface{} `json:"values,omitempty"`
}

type BatchUpdateRequest struct {
	Requests []Request `json:"requests"`
}

type Request struct {
	DeleteDimension *DeleteDimensionRequest `json:"deleteDimension,omitempty"`
}

type DeleteDimensionRequest struct {
	Range DimensionRange `json:"range"`
}

type DimensionRange struct {
	SheetID    int    `json:"sheetId"`
	Dimension  string `json:"dimension"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

type SpreadsheetResponse struct {
	Sheets []Sheet `json:"sheets"`
}

type Sheet struct {
	Properties SheetProperties `json:"properties"`
}

type SheetProperties struct {
	SheetID int    `json:"sheetId"`
	Title   string `json:"title"`
}

type APIErrorResponse struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
