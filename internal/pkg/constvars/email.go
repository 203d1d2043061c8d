package constvars

const (
	EmailPaymentSuccessSubject = "Payment Successful"
)

const (
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"

	EmailBodyPaymentSuccessFormat = "<p>Dear customer,</p>" +
		"<p>Your payment of <strong>%s %s</strong> was successful.</p>" +
		"<p>Transaction ID: <strong>%s</strong></p>" +
		"<p>Thank you for your purchase!</p>"
)
