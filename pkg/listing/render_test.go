package listing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(minute int) time.Time {
	return time.Date(2024, time.March, 1, 12, minute, 0, 0, time.UTC)
}

var exampleFiles = []FileEntry{
	{Name: "file1.txt", Size: 123, ModTime: at(0)},
	{Name: "file.two.jpg", Size: 4567, ModTime: at(1)},
}

func TestRenderApache_Example(t *testing.T) {
	got := RenderApache(exampleFiles, []string{"sub"})

	want := "<table>" +
		"<tr><th>Name</th><th>Last modified</th><th>Size</th></tr>" +
		"<tr><td><a href='file1.txt'>file1.txt</a></td><td>01-Mar-2024 12:00</td><td>123</td></tr>" +
		"<tr><td><a href='file.two.jpg'>file.two.jpg</a></td><td>01-Mar-2024 12:01</td><td>4567</td></tr>" +
		"<tr><td><a href='sub/'>sub/</a></td><td>01-Mar-2024 12:00</td><td>-</td></tr>" +
		"</table>"
	assert.Equal(t, want, got)
	assert.Equal(t, 4, strings.Count(got, "<tr>"), "cabeçalho + 3 linhas")
}

func TestRenderNginx_Example(t *testing.T) {
	got := RenderNginx(exampleFiles, []string{"sub"})

	want := "<pre>" +
		"<a href='file1.txt'>file1.txt</a> 2024-03-01 12:00 123\n" +
		"<a href='file.two.jpg'>file.two.jpg</a> 2024-03-01 12:01 4.5K\n" +
		"<a href='sub/'>sub/</a> 2024-03-01 12:00 -" +
		"</pre>"
	assert.Equal(t, want, got)
}

func TestRenderIIS_Example(t *testing.T) {
	got := RenderIIS(exampleFiles, []string{"sub"})

	want := "<pre>" +
		`<A HREF="../">[To Parent Directory]</A><br><br>` +
		`03/01/2024 12:00 PM        &lt;dir&gt; <A HREF="sub/">sub</A><br>` +
		`03/01/2024 12:00 PM          123 <A HREF="file1.txt">file1.txt</A><br>` +
		`03/01/2024 12:01 PM          4567 <A HREF="file.two.jpg">file.two.jpg</A><br>` +
		"</pre>"
	assert.Equal(t, want, got)
}

func TestRenderCaddy_Example(t *testing.T) {
	got := RenderCaddy(exampleFiles, []string{"sub"})

	want := "<table>" +
		"<tr><th>Name</th><th>Size</th><th>Modified</th></tr>" +
		"<tr><td><a href='file1.txt'>file1.txt</a></td><td>123</td><td>2024-03-01 12:00</td></tr>" +
		"<tr><td><a href='file.two.jpg'>file.two.jpg</a></td><td>4.5K</td><td>2024-03-01 12:01</td></tr>" +
		"<tr><td><a href='sub/'>sub/</a></td><td>-</td><td>2024-03-01 12:00</td></tr>" +
		"</table>"
	assert.Equal(t, want, got)
}

// entryNames extrai os nomes das entradas na ordem do documento.
func entryNames(t *testing.T, body string) []string {
	t.Helper()
	entries, err := Entries(strings.NewReader(body))
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Text, "/"))
	}
	return names
}

func TestRenderers_EveryEntryExactlyOnceInOrder(t *testing.T) {
	files := []FileEntry{
		{Name: "zeta.txt", Size: 1, ModTime: at(5)},
		{Name: "space name.txt", Size: 2048, ModTime: at(2)},
		{Name: ".hidden", Size: 10, ModTime: at(3)},
		{Name: "a.b.c.tar.gz", Size: 5 << 20, ModTime: at(4)},
	}
	subdirs := []string{"zz", "docs", "my dir"}

	fileNames := []string{"zeta.txt", "space name.txt", ".hidden", "a.b.c.tar.gz"}

	for _, p := range All() {
		t.Run(string(p.ID), func(t *testing.T) {
			names := entryNames(t, p.Render(files, subdirs))
			require.Len(t, names, len(files)+len(subdirs))

			var want []string
			if p.ID == IIS {
				want = append(append(want, subdirs...), fileNames...)
			} else {
				want = append(append(want, fileNames...), subdirs...)
			}
			assert.Equal(t, want, names)
		})
	}
}

func TestRenderers_SubdirPlacement(t *testing.T) {
	files := []FileEntry{{Name: "f.txt", Size: 1, ModTime: at(0)}}
	for _, p := range All() {
		body := p.Render(files, []string{"d"})
		fileIdx := strings.Index(body, "f.txt")
		dirIdx := strings.Index(body, `d/`)
		require.NotEqual(t, -1, fileIdx)
		require.NotEqual(t, -1, dirIdx)
		if p.ID == IIS {
			assert.Less(t, dirIdx, fileIdx, "IIS lista diretórios antes")
		} else {
			assert.Greater(t, dirIdx, fileIdx, "%s lista diretórios depois", p.ID)
		}
	}
}

func TestRenderers_EmptyInput(t *testing.T) {
	assert.Equal(t, "<pre></pre>", RenderNginx(nil, nil))
	assert.Equal(t, `<pre><A HREF="../">[To Parent Directory]</A><br><br></pre>`, RenderIIS(nil, nil))

	// Sem arquivos, subdiretórios usam o horário zero.
	got := RenderApache(nil, []string{"only"})
	assert.Contains(t, got, "<td>01-Jan-0001 00:00</td>")
}

func TestDocument(t *testing.T) {
	got := Document(IndexTitle("/root/"), "<pre></pre>")
	assert.Equal(t, "<!doctype html><html><head><title>Index of /root/</title></head><body><pre></pre></body></html>", got)
}
