package mdhtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html/atom"
)

func TestTable(t *testing.T) {
	out := ConvertLines([]string{
		"| Name | Age |",
		"| ---- | --- |",
		"| Alice | 30 |",
		"| Bob | 25 |",
	})
	assert.Equal(t, `<table>
<thead>
<tr><th>Name</th><th>Age</th></tr>
</thead>
<tbody>
<tr><td>Alice</td><td>30</td></tr>
<tr><td>Bob</td><td>25</td></tr>
</tbody>
</table>`, out)

	nodes := parseFragment(t, out)
	assert.Equal(t, 1, countElements(nodes, atom.Table))
	assert.Equal(t, 2, countElements(nodes, atom.Th))
	assert.Equal(t, 4, countElements(nodes, atom.Td))
}

func TestTableVariants(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{
			name:  "no dash run is not a table",
			input: []string{"| a | b |", "| x | y |"},
			want:  "<p>| a | b | | x | y |</p>",
		},
		{
			name:  "two dashes are not enough",
			input: []string{"| a |", "| -- |"},
			want:  "<p>| a | | -- |</p>",
		},
		{
			name:  "blank lines before separator are skipped",
			input: []string{"| a | b |", "", "|---|---|", "| 1 | 2 |"},
			want: "<table>\n<thead>\n<tr><th>a</th><th>b</th></tr>\n</thead>\n<tbody>\n" +
				"<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>",
		},
		{
			name:  "without outer pipes",
			input: []string{"a | b", "---|:---:", "1 | 2", "# After"},
			want: "<table>\n<thead>\n<tr><th>a</th><th>b</th></tr>\n</thead>\n<tbody>\n" +
				"<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>\n<h1>After</h1>",
		},
		{
			name:  "blank line ends body",
			input: []string{"|h|", "|---|", "|x|", "", "|y|"},
			want: "<table>\n<thead>\n<tr><th>h</th></tr>\n</thead>\n<tbody>\n" +
				"<tr><td>x</td></tr>\n</tbody>\n</table>\n<p>|y|</p>",
		},
		{
			name:  "pipe-free line ends body",
			input: []string{"|h|", "|---|", "|x|", "plain text"},
			want: "<table>\n<thead>\n<tr><th>h</th></tr>\n</thead>\n<tbody>\n" +
				"<tr><td>x</td></tr>\n</tbody>\n</table>\n<p>plain text</p>",
		},
		{
			name:  "empty body",
			input: []string{"| **b** | [l](u) |", "| :---: | --- |"},
			want: "<table>\n<thead>\n" + `<tr><th><strong>b</strong></th><th><a href="u">l</a></th></tr>` +
				"\n</thead>\n<tbody>\n</tbody>\n</table>",
		},
		{
			name:  "table flushes paragraph and closes list",
			input: []string{"- item", "| a |", "| --- |"},
			want: "<ul>\n<li>item</li>\n</ul>\n<table>\n<thead>\n<tr><th>a</th></tr>\n</thead>\n" +
				"<tbody>\n</tbody>\n</table>",
		},
		{
			name:  "list item with pipe stays a list item",
			input: []string{"- a | b", "| --- |"},
			want:  "<ul>\n<li>a | b</li>\n</ul>\n<p>| --- |</p>",
		},
		{
			name:  "body cells are inline transformed",
			input: []string{"| x |", "| --- |", "| *i* |"},
			want: "<table>\n<thead>\n<tr><th>x</th></tr>\n</thead>\n<tbody>\n" +
				"<tr><td><em>i</em></td></tr>\n</tbody>\n</table>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertLines(tt.input))
		})
	}
}

func TestIsSeparator(t *testing.T) {
	for _, s := range []string{"---", "| --- |", "|:---|---:|", " |---| ", "| ---- | --- |", "|\t---\t|"} {
		assert.True(t, isSeparator(s), s)
	}
	for _, s := range []string{"", "| -- |", "| x |", "|---|x", "| - - - |", "==="} {
		assert.False(t, isSeparator(s), s)
	}
}

func TestCells(t *testing.T) {
	assert.Equal(t, []string{"Name", "Age"}, cells("| Name | Age |"))
	assert.Equal(t, []string{"a", "b"}, cells("a|b"))
	assert.Equal(t, []string{"a", "", "c"}, cells("| a || c |"))
	// only one outer pipe is dropped on each side
	assert.Equal(t, []string{"", "a", ""}, cells("|| a ||"))
	assert.Equal(t, []string{""}, cells("|"))
}
