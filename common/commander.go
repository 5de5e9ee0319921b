package common

type Commander struct {
	stack []string
}

func NewCommander(parts ...string) *Commander {
	stack := make([]string, 0, len(parts)+10)
	return &Commander{append(stack, parts...)}
}

// Option appends "--name value" only when the value is not empty.
func (it *Commander) Option(name, value string) *Commander {
	if len(value) > 0 {
		it.stack = append(it.stack, name, value)
	}
	return it
}

func (it *Commander) ConditionalFlag(condition bool, parts ...string) *Commander {
	if condition {
		it.stack = append(it.stack, parts...)
	}
	return it
}

func (it *Commander) Extra(parts ...string) *Commander {
	it.stack = append(it.stack, parts...)
	return it
}

func (it *Commander) CLI() []string {
	return it.stack
}
