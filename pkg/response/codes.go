package response

// Business codes carried in the envelope, grouped by HTTP class.
const (
	CodeInvalidParams = 40000

	CodeTokenMissing   = 40101
	CodeTokenInvalid   = 40102
	CodeTokenExpired   = 40103
	CodeTokenRevoked   = 40104
	CodeBadCredentials = 40105

	CodeForbidden = 40300

	CodeNotFound = 40400

	CodeConflict   = 40900
	CodeEmailTaken = 40901

	CodeInternal = 50000
)
