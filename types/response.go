package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type UploadResponse struct {
	CourseCode   string `json:"course_code"`
	OriginalName string `json:"original_name,omitempty"`
	Units        int    `json:"units"`
}

type TopicSearchResponse struct {
	Query string     `json:"query"`
	Hits  []TopicHit `json:"hits"`
}
