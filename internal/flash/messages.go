package flash

// Code identifies a fallback notice used when the upstream API gives no
// detail message of its own.
type Code string

const (
	// ─── Authentication ────────────────────────────────────────────────
	CodeLoginFailed    Code = "LOGIN_FAILED"
	CodeRegisterFailed Code = "REGISTER_FAILED"
	CodeRegistered     Code = "REGISTERED"
	CodeSessionEnded   Code = "SESSION_ENDED"

	// ─── Student ───────────────────────────────────────────────────────
	CodeEnrolled            Code = "ENROLLED"
	CodeEnrollFailed        Code = "ENROLL_FAILED"
	CodeLessonCompleted     Code = "LESSON_COMPLETED"
	CodeCompleteFailed      Code = "COMPLETE_FAILED"
	CodeCertificateFailed   Code = "CERTIFICATE_FAILED"
	CodeCertificateNotReady Code = "CERTIFICATE_NOT_READY"

	// ─── Creator ───────────────────────────────────────────────────────
	CodeCourseSubmitted   Code = "COURSE_SUBMITTED"
	CodeCourseFailed      Code = "COURSE_FAILED"
	CodeLessonAdded       Code = "LESSON_ADDED"
	CodeLessonAddFailed   Code = "LESSON_ADD_FAILED"

	// ─── Admin ─────────────────────────────────────────────────────────
	CodeCourseApproved   Code = "COURSE_APPROVED"
	CodeApproveFailed    Code = "APPROVE_FAILED"
	CodeRoleUpdated      Code = "ROLE_UPDATED"
	CodeRoleUpdateFailed Code = "ROLE_UPDATE_FAILED"

	// ─── Validation ────────────────────────────────────────────────────
	CodeInvalidForm Code = "INVALID_FORM"
)

// Message returns the human-readable text for a notice code.
func Message(code Code) string {
	switch code {
	case CodeLoginFailed:
		return "Unable to sign in. Check your email and password."
	case CodeRegisterFailed:
		return "Registration failed. Please try again."
	case CodeRegistered:
		return "Registration successful! Please log in."
	case CodeSessionEnded:
		return "You have been logged out."
	case CodeEnrolled:
		return "Enrolled successfully."
	case CodeEnrollFailed:
		return "Enrollment failed."
	case CodeLessonCompleted:
		return "Lesson marked complete."
	case CodeCompleteFailed:
		return "Could not mark the lesson complete."
	case CodeCertificateFailed:
		return "Could not generate certificate."
	case CodeCertificateNotReady:
		return "Certificate not available. Complete all lessons first."
	case CodeCourseSubmitted:
		return "Course submitted for admin approval."
	case CodeCourseFailed:
		return "Failed to create course."
	case CodeLessonAdded:
		return "Lesson added successfully."
	case CodeLessonAddFailed:
		return "Failed to add lesson."
	case CodeCourseApproved:
		return "Course approved successfully."
	case CodeApproveFailed:
		return "Failed to approve course."
	case CodeRoleUpdated:
		return "User role updated."
	case CodeRoleUpdateFailed:
		return "Failed to update role."
	case CodeInvalidForm:
		return "Please check the form and try again."
	default:
		return "Something went wrong."
	}
}
