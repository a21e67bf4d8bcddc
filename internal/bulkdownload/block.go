package bulkdownload

import (
	"strings"
)

// BlockSeparator joins the blocks of a curl config.
const BlockSeparator = "\n\n"

// Block is one entry of a curl config file.
type Block struct {
	Lines []string
}

func (b Block) String() string {
	return strings.Join(b.Lines, "\n")
}

// IsComment reports whether the block only carries a comment.
func (b Block) IsComment() bool {
	return len(b.Lines) > 0 && strings.HasPrefix(b.Lines[0], "#")
}

// quoteEscaper keeps a value on one line; curl decodes these escapes inside
// double quoted config values.
var quoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoted(key, value string) string {
	return key + `="` + quoteEscaper.Replace(value) + `"`
}

// GlobalOptions apply to every transfer in the config.
func GlobalOptions() Block {
	return Block{Lines: []string{"--create-dirs", "--compressed"}}
}

func URLBlock(url, output string) Block {
	return Block{Lines: []string{quoted("url", url), quoted("output", output)}}
}

func CommentBlock(text string) Block {
	text = strings.ReplaceAll(text, "\n", " ")
	return Block{Lines: []string{"# " + text}}
}

func SignErrorBlock(output string) Block {
	return CommentBlock("Error downloading " + output +
		".  Did you delete the file in the bucket and not sync it in Single Cell Portal?")
}

func HeaderBlock(header string) Block {
	return Block{Lines: []string{"-H " + `"` + quoteEscaper.Replace(header) + `"`}}
}

// Join renders blocks as a curl config.
func Join(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, BlockSeparator)
}
