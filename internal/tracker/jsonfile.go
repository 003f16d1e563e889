package tracker

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dculotta/taskline/internal/task"
)

//go:embed taskline.schema.json
var taskSchemaJSON string

const jsonSchemaVersion = 1

// jsonDocument is the on-disk structure of the JSON backend.
type jsonDocument struct {
	SchemaVersion int        `json:"schema_version"`
	Tasks         []jsonTask `json:"tasks"`
}

type jsonTask struct {
	Name     string     `json:"name"`
	Tags     []string   `json:"tags,omitempty"`
	Complete bool       `json:"complete"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// JSONFile is a structured-file backend storing the collection as a
// single JSON document. Operation semantics match the plain-text
// backend; the document is rewritten on every mutation, including Add,
// since a JSON document has no appendable tail.
type JSONFile struct {
	path   string
	schema *jsonschema.Schema // nil disables validation
}

// NewJSONFile returns a tracker over a JSON document at path. When
// validate is true, every load checks the raw document against the
// embedded schema before decoding.
func NewJSONFile(path string, validate bool) (*JSONFile, error) {
	j := &JSONFile{path: path}
	if validate {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource("taskline.schema.json", strings.NewReader(taskSchemaJSON)); err != nil {
			return nil, fmt.Errorf("load task schema: %w", err)
		}
		schema, err := compiler.Compile("taskline.schema.json")
		if err != nil {
			return nil, fmt.Errorf("compile task schema: %w", err)
		}
		j.schema = schema
	}
	return j, nil
}

// Tasks loads and sorts the whole collection. A missing file is a first
// run and yields no tasks.
func (j *JSONFile) Tasks() ([]task.Task, error) {
	doc, err := j.load()
	if err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(doc.Tasks))
	for _, jt := range doc.Tasks {
		deadline := jt.Deadline
		if deadline != nil {
			utc := deadline.UTC()
			deadline = &utc
		}
		tasks = append(tasks, task.Task{
			Name:     jt.Name,
			Tags:     jt.Tags,
			Deadline: deadline,
			Complete: jt.Complete,
		})
	}
	sortTasks(tasks)
	return tasks, nil
}

// Add appends a task to the document and rewrites it.
func (j *JSONFile) Add(name string, tags []string, deadline *time.Time) error {
	doc, err := j.load()
	if err != nil {
		return err
	}
	t := task.New(name, tags, deadline)
	doc.Tasks = append(doc.Tasks, jsonTask{
		Name:     t.Name,
		Tags:     t.Tags,
		Complete: t.Complete,
		Deadline: t.Deadline,
	})
	return j.save(doc)
}

// Complete marks the id-th incomplete task done. An out-of-range id is a
// no-op that skips the rewrite.
func (j *JSONFile) Complete(id int) error {
	tasks, err := j.Tasks()
	if err != nil {
		return err
	}
	idx := incompleteIndex(tasks, id)
	if idx < 0 {
		return nil
	}
	tasks[idx].MarkComplete()
	return j.saveTasks(tasks)
}

// Delete removes the id-th incomplete task. An out-of-range id is a
// no-op that skips the rewrite.
func (j *JSONFile) Delete(id int) error {
	tasks, err := j.Tasks()
	if err != nil {
		return err
	}
	idx := incompleteIndex(tasks, id)
	if idx < 0 {
		return nil
	}
	tasks = append(tasks[:idx], tasks[idx+1:]...)
	return j.saveTasks(tasks)
}

// List renders the collection as a table.
func (j *JSONFile) List(opts ListOptions) (string, error) {
	tasks, err := j.Tasks()
	if err != nil {
		return "", err
	}
	return renderTable(tasks, opts), nil
}

func (j *JSONFile) load() (*jsonDocument, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &jsonDocument{SchemaVersion: jsonSchemaVersion}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if j.schema != nil {
		var raw interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse task file: %w", err)
		}
		if err := j.schema.Validate(raw); err != nil {
			return nil, fmt.Errorf("task file %s: %w", j.path, err)
		}
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if doc.SchemaVersion != jsonSchemaVersion {
		return nil, fmt.Errorf("task file %s: schema_version %d, want %d", j.path, doc.SchemaVersion, jsonSchemaVersion)
	}
	return &doc, nil
}

func (j *JSONFile) saveTasks(tasks []task.Task) error {
	doc := &jsonDocument{SchemaVersion: jsonSchemaVersion}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, jsonTask{
			Name:     t.Name,
			Tags:     t.Tags,
			Complete: t.Complete,
			Deadline: t.Deadline,
		})
	}
	return j.save(doc)
}

// save writes the document with 2-space indentation and a trailing
// newline.
func (j *JSONFile) save(doc *jsonDocument) error {
	if doc.Tasks == nil {
		doc.Tasks = []jsonTask{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(j.path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}
