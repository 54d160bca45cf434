package iocli

//go:generate moq -out io_mock.go . IO

// IO абстрагирует ввод/вывод терминала для команд CLI
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
	IsTerminal() bool
	Width() int
	Write(p []byte) (n int, err error)
}
