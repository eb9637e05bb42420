package app

import (
    "bufio"
    "errors"
    "os"
    "strings"
)

// LoadEnvFiles loads dotenv files of KEY=VALUE pairs into the process
// environment. Later files override earlier ones; missing files are skipped.
// Blank lines, '#' comments and a leading "export " are accepted. Values are
// not expanded.
func LoadEnvFiles(paths ...string) error {
    for _, p := range paths {
        if strings.TrimSpace(p) == "" {
            continue
        }
        if err := loadEnvFile(p); err != nil {
            if errors.Is(err, os.ErrNotExist) {
                continue
            }
            return err
        }
    }
    return nil
}

func loadEnvFile(path string) error {
    f, err := os.Open(path)
    if err != nil {
        return err
    }
    defer f.Close()

    scanner := bufio.NewScanner(f)
    for scanner.Scan() {
        key, val, ok := parseEnvLine(scanner.Text())
        if !ok {
            continue
        }
        if err := os.Setenv(key, val); err != nil {
            return err
        }
    }
    return scanner.Err()
}

// parseEnvLine splits one dotenv line. Quoted values keep their content
// verbatim; unquoted values lose a trailing " #comment".
func parseEnvLine(line string) (key, val string, ok bool) {
    line = strings.TrimSpace(line)
    if line == "" || strings.HasPrefix(line, "#") {
        return "", "", false
    }
    line = strings.TrimPrefix(line, "export ")
    eq := strings.IndexByte(line, '=')
    if eq <= 0 {
        return "", "", false
    }
    key = strings.TrimSpace(line[:eq])
    val = strings.TrimSpace(line[eq+1:])
    if n := len(val); n >= 2 && (val[0] == '"' || val[0] == '\'') && val[n-1] == val[0] {
        return key, val[1 : n-1], true
    }
    if i := strings.Index(val, " #"); i >= 0 {
        val = strings.TrimSpace(val[:i])
    }
    return key, val, true
}
