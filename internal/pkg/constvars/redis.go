package constvars

const (
	RedisKeyPaymentCallbackLockFormat = "payment:callback:lock:%s"
)
