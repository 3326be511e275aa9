package consume

// WithMaxMessages returns an option to set the maximum number of messages
// received per poll.
func WithMaxMessages(msgs int) MaxMessagesOption {
	return MaxMessagesOption(msgs)
}

// MaxMessagesOption is an option type for setting the maximum number of messages per poll.
type MaxMessagesOption int

func (o MaxMessagesOption) applyConsumer(c *Consumer) {
	c.maxMessages = int(o)
}

// WithWaitSeconds returns an option to set the long-poll wait time in seconds.
func WithWaitSeconds(sec int) WaitSecondsOption {
	return WaitSecondsOption(sec)
}

// WaitSecondsOption is an option type for setting the long-poll wait time.
type WaitSecondsOption int

func (o WaitSecondsOption) applyConsumer(c *Consumer) {
	c.waitSeconds = int(o)
}

// WithVisibilitySeconds returns an option to set the visibility timeout
// applied to received messages.
func WithVisibilitySeconds(sec int) VisibilitySecondsOption {
	return VisibilitySecondsOption(sec)
}

// VisibilitySecondsOption is an option type for setting the receive visibility timeout.
type VisibilitySecondsOption int

func (o VisibilitySecondsOption) applyConsumer(c *Consumer) {
	c.visibilitySeconds = int(o)
}

// WithErrorHandler returns an option to replace the default error logger.
func WithErrorHandler(h ErrorHandler) ErrorHandlerOption {
	return ErrorHandlerOption{h}
}

// ErrorHandlerOption is an option type for setting the consumer error handler.
type ErrorHandlerOption struct {
	handler ErrorHandler
}

func (o ErrorHandlerOption) applyConsumer(c *Consumer) {
	c.errHandler = o.handler
}
