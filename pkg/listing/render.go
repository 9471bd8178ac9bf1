package listing

import (
	"strconv"
	"strings"

	"github.com/raywall/listing-fixtures/pkg/format"
)

// Os quatro renderers variam de forma independente em: contêiner (table ou
// pre), representação do tamanho (bytes ou compacto), ordem das colunas,
// posição dos subdiretórios e padrão de data. Nomes entram literalmente no
// markup, sem escape.

// RenderApache reproduz a tabela do mod_autoindex: Name | Last modified | Size,
// tamanho em bytes, subdiretórios ao final com "-" no tamanho.
func RenderApache(files []FileEntry, subdirs []string) string {
	var b strings.Builder
	b.WriteString("<table>")
	b.WriteString("<tr><th>Name</th><th>Last modified</th><th>Size</th></tr>")
	for _, f := range files {
		b.WriteString("<tr>")
		b.WriteString("<td><a href='" + f.Name + "'>" + f.Name + "</a></td>")
		b.WriteString("<td>" + format.ApacheDate(f.ModTime) + "</td>")
		b.WriteString("<td>" + strconv.FormatInt(f.Size, 10) + "</td>")
		b.WriteString("</tr>")
	}
	dirDate := format.ApacheDate(placeholderTime(files))
	for _, d := range subdirs {
		b.WriteString("<tr>")
		b.WriteString("<td><a href='" + d + "/'>" + d + "/</a></td>")
		b.WriteString("<td>" + dirDate + "</td>")
		b.WriteString("<td>-</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

// RenderNginx reproduz o autoindex do nginx: um bloco pre com uma linha por
// entrada, "<link> <data> <tamanho compacto>".
func RenderNginx(files []FileEntry, subdirs []string) string {
	lines := make([]string, 0, len(files)+len(subdirs))
	for _, f := range files {
		lines = append(lines, "<a href='"+f.Name+"'>"+f.Name+"</a> "+format.NginxDate(f.ModTime)+" "+format.Size(f.Size))
	}
	dirDate := format.NginxDate(placeholderTime(files))
	for _, d := range subdirs {
		lines = append(lines, "<a href='"+d+"/'>"+d+"/</a> "+dirDate+" -")
	}
	return "<pre>" + strings.Join(lines, "\n") + "</pre>"
}

// RenderIIS reproduz o directoryBrowse do IIS. Começa pelo link para o
// diretório pai e lista subdiretórios ANTES dos arquivos.
func RenderIIS(files []FileEntry, subdirs []string) string {
	var b strings.Builder
	b.WriteString("<pre>")
	b.WriteString(`<A HREF="../">[To Parent Directory]</A><br><br>`)
	dirDate := format.IISDate(placeholderTime(files))
	for _, d := range subdirs {
		b.WriteString(dirDate + "        &lt;dir&gt; <A HREF=\"" + d + "/\">" + d + "</A><br>")
	}
	for _, f := range files {
		b.WriteString(format.IISDate(f.ModTime) + "          " + strconv.FormatInt(f.Size, 10) +
			" <A HREF=\"" + f.Name + "\">" + f.Name + "</A><br>")
	}
	b.WriteString("</pre>")
	return b.String()
}

// RenderCaddy reproduz o file_server browse: Name | Size | Modified, com o
// tamanho compacto antes da data.
func RenderCaddy(files []FileEntry, subdirs []string) string {
	var b strings.Builder
	b.WriteString("<table>")
	b.WriteString("<tr><th>Name</th><th>Size</th><th>Modified</th></tr>")
	for _, f := range files {
		b.WriteString("<tr>")
		b.WriteString("<td><a href='" + f.Name + "'>" + f.Name + "</a></td>")
		b.WriteString("<td>" + format.Size(f.Size) + "</td>")
		b.WriteString("<td>" + format.CaddyDate(f.ModTime) + "</td>")
		b.WriteString("</tr>")
	}
	dirDate := format.CaddyDate(placeholderTime(files))
	for _, d := range subdirs {
		b.WriteString("<tr>")
		b.WriteString("<td><a href='" + d + "/'>" + d + "/</a></td>")
		b.WriteString("<td>-</td>")
		b.WriteString("<td>" + dirDate + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}
