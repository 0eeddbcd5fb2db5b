package document

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	nwlerrors "github.com/alexisbeaulieu97/nwl/pkg/errors"
)

// ProjectFile is the default project configuration file name.
const ProjectFile = "nwl.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadPage reads, decodes and validates a `page:` document from disk.
func LoadPage(path string) (*Page, error) {
	data, err := readInput("page", path)
	if err != nil {
		return nil, err
	}
	return ParsePage(path, data)
}

// ParsePage decodes and validates a `page:` document. path is used for error reporting only.
func ParsePage(path string, data []byte) (*Page, error) {
	var file PageFile
	if err := decodeStrict(data, &file); err != nil {
		return nil, nwlerrors.NewParseError(path, extractLine(err), err)
	}
	if file.Page.Name == "" && len(file.Page.Children) == 0 {
		return nil, nwlerrors.NewParseError(path, 0, errors.New("missing `page:` root"))
	}

	if err := ValidatePage(&file.Page); err != nil {
		return nil, err
	}
	return &file.Page, nil
}

// ParseDocument accepts either a single `page:` document or a `pages:` list.
func ParseDocument(path string, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nwlerrors.NewParseError(path, extractLine(err), err)
	}

	top := &root
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = top.Content[0]
	}

	if hasYAMLKey(top, "page") {
		page, err := ParsePage(path, data)
		if err != nil {
			return nil, err
		}
		return &Document{Pages: []Page{*page}}, nil
	}

	if !hasYAMLKey(top, "pages") {
		return nil, nwlerrors.NewParseError(path, top.Line, errors.New("expected a `page:` or `pages:` root"))
	}

	var doc Document
	if err := top.Decode(&doc); err != nil {
		return nil, nwlerrors.NewParseError(path, extractLine(err), err)
	}
	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadDocument reads a page or multi-page document from disk.
func LoadDocument(path string) (*Document, error) {
	data, err := readInput("page", path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(path, data)
}

// LoadProject reads, decodes and validates a project configuration file.
func LoadProject(path string) (*ProjectConfig, error) {
	data, err := readInput("config", path)
	if err != nil {
		return nil, err
	}
	return ParseProject(path, data)
}

// ParseProject decodes and validates project configuration bytes.
func ParseProject(path string, data []byte) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, nwlerrors.NewParseError(path, extractLine(err), err)
	}
	if err := ValidateProject(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readInput(kind, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nwlerrors.NewNotFoundError(kind, path, err)
		}
		return nil, nwlerrors.NewParseError(path, 0, err)
	}
	return data, nil
}

// decodeStrict rejects empty input, which yaml.v3 otherwise decodes to a zero value.
func decodeStrict(data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("document is empty")
	}
	return yaml.Unmarshal(data, out)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
