// Package dto defines data transfer objects for the survey feature's HTTP transport layer.
package dto

// SubmitSurveyReq represents the request body for the /survey/submit
// endpoint. All four answers and the date are required and non-empty.
// This is the only place answer content is validated; the store accepts
// whatever passes this binding.
type SubmitSurveyReq struct {
	Date      string `json:"date" binding:"required"`
	Question1 string `json:"question1" binding:"required"`
	Question2 string `json:"question2" binding:"required"`
	Question3 string `json:"question3" binding:"required"`
	Question4 string `json:"question4" binding:"required"`
}

// CheckSurveyResp is the success payload of the /survey/check endpoint.
type CheckSurveyResp struct {
	HasAnswered bool `json:"hasAnswered"`
}
