package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errPasswordMismatch = errors.New("passwords do not match")

// promptPassword reads one line from stdin with echo disabled. When stdin is
// not a terminal the line is read as is, which lets scripts pipe a password in.
func promptPassword(out io.Writer, stdin *os.File, label string) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}
	fmt.Fprint(out, label)

	if restore, err := disableEcho(stdin); err == nil {
		defer func() {
			restore()
			fmt.Fprintln(out)
		}()
	}

	return readLine(stdin)
}

// readLine reads byte by byte so consecutive prompts never lose buffered input.
func readLine(stdin io.Reader) (string, error) {
	var line strings.Builder
	buffer := make([]byte, 1)
	for {
		read, err := stdin.Read(buffer)
		if read == 1 {
			if buffer[0] == '\n' {
				break
			}
			line.WriteByte(buffer[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(line.String(), "\r"), nil
}

func promptNewPassword(out io.Writer, stdin *os.File) (string, error) {
	password, err := promptPassword(out, stdin, "Password: ")
	if err != nil {
		return "", err
	}
	confirmation, err := promptPassword(out, stdin, "Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirmation {
		return "", errPasswordMismatch
	}
	return password, nil
}
