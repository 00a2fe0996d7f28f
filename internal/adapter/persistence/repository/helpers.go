package repository

import (
	"os"
	"strconv"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func floatsToStrings(vs []float64) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, floatToString(v))
	}
	return out
}

func stringsToFloats(ss []string) []float64 {
	if len(ss) == 0 {
		return nil
	}
	out := make([]float64, 0, len(ss))
	for _, s := range ss {
		out = append(out, stringToFloat(s))
	}
	return out
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
