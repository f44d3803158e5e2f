package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

type targetFile struct {
	Targets []target `json:"targets"`
	Ignore  []string `json:"ignore"`
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

// defaultTargets covers every read endpoint the dashboard uses, including the 400 and 404 paths.
var defaultTargets = []target{
	{Method: http.MethodGet, Path: "/api/preview", Critical: true},
	{Method: http.MethodGet, Path: "/api/rows", Critical: true},
	{Method: http.MethodGet, Path: "/api/rows?page=2&pageSize=25", Critical: true},
	{Method: http.MethodGet, Path: "/api/rows?page=1&pageSize=500", Critical: true},
	{Method: http.MethodGet, Path: "/api/rows?page=0", Critical: false},
	{Method: http.MethodGet, Path: "/api/analytics/avg-exam-by-cluster", Critical: true},
	{Method: http.MethodGet, Path: "/api/analytics/level-distribution", Critical: true},
	{Method: http.MethodGet, Path: "/api/analytics/study-hours-buckets", Critical: true},
	{Method: http.MethodGet, Path: "/health", Critical: false},
	{Method: http.MethodGet, Path: "/api/does-not-exist", Critical: false},
}

// defaultIgnore lists keys whose values differ between any two responses.
var defaultIgnore = []string{"timestamp"}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		ignore      string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3001", "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", "", "Optional JSON targets file; built-in targets are used when empty")
	flag.StringVar(&ignore, "ignore", strings.Join(defaultIgnore, ","), "Comma separated JSON keys excluded from body comparison")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	logr, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(2)
	}
	defer logr.Sync() //nolint:errcheck

	targets := defaultTargets
	ignored := splitKeys(ignore)
	if targetsPath != "" {
		file, err := loadTargets(targetsPath)
		if err != nil {
			logr.Fatal("failed to load targets", zap.String("path", targetsPath), zap.Error(err))
		}
		targets = file.Targets
		ignored = append(ignored, file.Ignore...)
	}

	client := &http.Client{Timeout: timeout}
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)

	for _, t := range targets {
		comp := compareTarget(client, goBase, legacyBase, t, ignored)
		if comp.Error != nil || !comp.StatusMatch || !comp.BodyMatch {
			if t.Critical {
				breaking++
			} else {
				optionalDiff++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(os.Stdout, comparisons)

	logr.Info("shadow compare finished",
		zap.Int("targets", len(comparisons)),
		zap.Int("breaking", breaking),
		zap.Int("optional", optionalDiff),
	)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) (*targetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return &file, nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func compareTarget(client *http.Client, goBase, legacyBase string, tgt target, ignored []string) comparison {
	comp := comparison{Target: tgt}

	goStatus, goBody, goDur, goErr := fetch(client, goBase, tgt)
	legacyStatus, legacyBody, legacyDur, legacyErr := fetch(client, legacyBase, tgt)
	comp.DurationGo = goDur
	comp.DurationLegacy = legacyDur

	if goErr != nil {
		comp.Error = fmt.Errorf("go request failed: %w", goErr)
		return comp
	}
	if legacyErr != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", legacyErr)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody, ignored)
	return comp
}

func fetch(client *http.Client, base string, tgt target) (int, []byte, time.Duration, error) {
	if client == nil {
		return 0, nil, 0, errors.New("nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, time.Since(start), fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// bodiesEqual compares two bodies as JSON with ignored keys removed at every depth.
// Non-JSON bodies are compared byte for byte after trimming.
func bodiesEqual(a, b []byte, ignored []string) bool {
	var aj, bj interface{}
	errA := json.Unmarshal(a, &aj)
	errB := json.Unmarshal(b, &bj)
	if errA != nil || errB != nil {
		return errA != nil && errB != nil && bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b))
	}

	skip := make(map[string]struct{}, len(ignored))
	for _, k := range ignored {
		skip[k] = struct{}{}
	}
	return reflect.DeepEqual(normalize(aj, skip), normalize(bj, skip))
}

// normalize drops ignored keys and collapses integral floats so 3 and 3.0 compare equal.
func normalize(v interface{}, skip map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if _, ok := skip[k]; ok {
				continue
			}
			out[k] = normalize(child, skip)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = normalize(child, skip)
		}
		return out
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	default:
		return val
	}
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Fprintf(w, "  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Fprintf(w, "  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
		} else {
			fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
