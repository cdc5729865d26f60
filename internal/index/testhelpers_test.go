package index

import "os"

func writeRaw(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func truncateCopy(src, dst string, n int64) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if int64(len(data)) > n {
		data = data[:n]
	}
	return os.WriteFile(dst, data, 0o644)
}
