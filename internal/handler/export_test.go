package handler

// Export for testing
type SubmitResponse = submitResponse
type EnquiryResponse = enquiryResponse
type UploadResponse = uploadResponse
type LoginResponse = loginResponse
type AdminResponse = adminResponse
type ValidationResponse = validationResponse
type ThrottledResponse = throttledResponse

var WriteServiceError = writeServiceError

const AuthCookieName = authCookieName
