// Package dto defines data transfer objects for the mail feature's HTTP transport layer.
package dto

// SurveyData mirrors the answered survey attached to the e-mail request.
type SurveyData struct {
	Date      string `json:"date" binding:"required"`
	Question1 string `json:"question1" binding:"required"`
	Question2 string `json:"question2" binding:"required"`
	Question3 string `json:"question3" binding:"required"`
	Question4 string `json:"question4" binding:"required"`
}

// SendSurveyEmailReq represents the request body for the
// /email/send-survey endpoint.
type SendSurveyEmailReq struct {
	To         string     `json:"to" binding:"required,email"`
	Subject    string     `json:"subject" binding:"required"`
	Body       string     `json:"body" binding:"required"`
	SurveyData SurveyData `json:"surveyData" binding:"required"`
}

// SendSurveyEmailResp is the success payload of the /email/send-survey
// endpoint.
type SendSurveyEmailResp struct {
	Sent bool `json:"sent"`
}
