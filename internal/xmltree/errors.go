package xmltree

import "errors"

var ErrUnbalanced = errors.New("xml tree has unbalanced open/close calls")
