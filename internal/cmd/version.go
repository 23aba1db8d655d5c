package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/eovim/apigen/internal/codegen/common"
)

// Version prints the generator banner stamped into generated files.
type Version struct {
	out io.Writer `kong:"-"`
}

func (c *Version) Run() error {
	banner, err := common.Banner()
	if err != nil {
		return err
	}
	w := c.out
	if w == nil {
		w = os.Stdout
	}
	_, err = fmt.Fprintln(w, banner)
	return err
}
