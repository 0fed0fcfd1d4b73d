package stat

import (
	"fmt"
	"strings"
)

// CountToTransfac converts the lines of a count file written by
// WriteCountMatrix into the transfac frequency-matrix format used by
// external logo tools.
// http://meme.sdsc.edu/meme/doc/transfac-format.html
func CountToTransfac(identifier string, countLines []string) (string, error) {
	if len(countLines) == 0 || len(countLines[0]) < 5 {
		return "", fmt.Errorf("transfac: malformed count content")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ID %s\n", identifier)
	sb.WriteString("BF unknown\n")
	// reuse the block-name header, swapping the residue column in
	sb.WriteString("P0" + countLines[0][2:] + "\n")

	for _, line := range countLines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || len(line) < 5 {
			continue
		}
		var residue int
		if _, err := fmt.Sscanf(fields[0], "%d", &residue); err != nil {
			return "", fmt.Errorf("transfac: malformed residue number %q", fields[0])
		}
		fmt.Fprintf(&sb, "%05d %s    X\n", residue, strings.TrimRight(line[5:], " \n"))
	}
	sb.WriteString("XX\n")
	sb.WriteString("//")
	return sb.String(), nil
}
