package env

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Prefix is prepended to every variable read by String, Float and Bool.
const Prefix = "PHYSICS_SIM_"

// Load reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// Variables already set in the process environment win over the file.
// The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		// Remove surrounding quotes if present
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

// String returns PHYSICS_SIM_<name>, or ok false when it is unset or blank.
func String(name string) (value string, ok bool) {
	v, set := os.LookupEnv(Prefix + name)
	v = strings.TrimSpace(v)
	if !set || v == "" {
		return "", false
	}
	return v, true
}

// Float parses PHYSICS_SIM_<name> as a float. ok is false when the variable is unset;
// err is set when it is present but malformed.
func Float(name string) (value float64, ok bool, err error) {
	s, ok := String(name)
	if !ok {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true, err
	}
	return value, true, nil
}

// Bool parses PHYSICS_SIM_<name> with strconv.ParseBool semantics.
func Bool(name string) (value bool, ok bool, err error) {
	s, ok := String(name)
	if !ok {
		return false, false, nil
	}
	value, err = strconv.ParseBool(s)
	if err != nil {
		return false, true, err
	}
	return value, true, nil
}
