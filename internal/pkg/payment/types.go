package payment

// The course is sold at a single fixed price point. The reconciler rejects
// completed checkout sessions that do not carry exactly these terms, no
// matter how the session was created.
const (
	CoursePriceCents int64 = 9900
	CourseCurrency         = "eur"
)

// MetadataUserIDKey is the checkout session metadata key carrying the buyer's
// identity through the asynchronous webhook round-trip.
const MetadataUserIDKey = "userId"

// MetadataCourseTitleKey carries the course title for the confirmation email.
const MetadataCourseTitleKey = "courseTitle"

const eventCheckoutCompleted = "checkout.session.completed"

// CheckoutInput is the normalized input for creating a provider checkout
// session. The user id travels through the session metadata and is the only
// channel that carries identity back via the webhook.
type CheckoutInput struct {
	UserID            string
	UserEmail         string
	CourseTitle       string
	CourseDescription string
}
