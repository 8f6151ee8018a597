package reports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/jduncan017/pourcost/internal/cloudwriter"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/reports/producers"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// OutputDestination receives encoded report rows keyed by topic.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	raw      map[string]*os.File
	headers  map[string][]string
}

type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

type ParquetOutput struct {
	basePath           string
	folder             string
	mu                 sync.Mutex
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

// CloudParquetFile adapts a cloudwriter.CloudWriter to the parquet
// source interface. Cloud objects are write-once: Read and SeekEnd are
// unsupported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		raw:      make(map[string]*os.File),
		headers:  make(map[string][]string),
	}
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if config.OutputDestination != "local" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch config.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	return p, nil
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	// the cloud object is already set up for writing
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	// the object is implicitly created when we start writing
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

// partitionPath groups report rows by the date they were generated.
func partitionPath(timestamp int64) string {
	t := time.Unix(timestamp, 0)
	year, month, day := t.Date()
	return fmt.Sprintf("year=%d/month=%02d/day=%02d", year, month, day)
}

func decodeTimestamp(msg []byte) (map[string]interface{}, int64, error) {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return nil, 0, err
	}
	timestamp, ok := row["timestamp"].(float64)
	if !ok {
		return nil, 0, fmt.Errorf("report row has no timestamp")
	}
	return row, int64(timestamp), nil
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	row, timestamp, err := decodeTimestamp(msg)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(c.basePath, c.folder, topic, partitionPath(timestamp))
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath(timestamp))
	csvWriter, ok := c.files[fileKey]
	if !ok {
		file, err := os.Create(filepath.Join(fullPath, "data.csv"))
		if err != nil {
			return err
		}
		csvWriter = csv.NewWriter(file)
		c.files[fileKey] = csvWriter
		c.raw[fileKey] = file

		headers := sortedHeaders(row)
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		c.headers[fileKey] = headers
	}

	record := make([]string, len(c.headers[fileKey]))
	for i, header := range c.headers[fileKey] {
		value, ok := row[header]
		if !ok {
			record[i] = ""
		} else {
			record[i] = fmt.Sprintf("%v", value)
		}
	}

	if err := csvWriter.Write(record); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func sortedHeaders(row map[string]interface{}) []string {
	var headers []string
	for key := range row {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	return headers
}

func (c *CSVOutput) Close() error {
	for key, csvWriter := range c.files {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
		if file, ok := c.raw[key]; ok {
			if err := file.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	_, timestamp, err := decodeTimestamp(msg)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(j.basePath, j.folder, topic, partitionPath(timestamp))
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath(timestamp))
	file, ok := j.files[fileKey]
	if !ok {
		file, err = os.Create(filepath.Join(fullPath, "data.json"))
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err = file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	row, timestamp, err := decodeTimestamp(msg)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(p.basePath, p.folder, topic, partitionPath(timestamp))
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	writerKey := fmt.Sprintf("%s_%s", topic, partitionPath(timestamp))
	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.writers[writerKey]
	if !ok {
		pw, err = p.createNewWriter(writerKey, fullPath, topic)
		if err != nil {
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}

	if err := pw.Write(row); err != nil {
		return fmt.Errorf("failed to write report row: %w", err)
	}

	return nil
}

func (p *ParquetOutput) createNewWriter(writerKey, fullPath, topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, fullPath, "data.parquet")
		cloudWriter, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = NewCloudParquetFile(cloudWriter)
	} else {
		filePath := filepath.Join(fullPath, "data.parquet")
		fw, err = local.NewLocalFileWriter(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	sc, err := GetSchema(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc

	p.writers[writerKey] = pw
	p.files[writerKey] = fw

	return pw, nil
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for key, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			log.Printf("Error closing writer for key %s: %v", key, err)
		}
		if f, ok := p.files[key]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				log.Printf("Error closing file for key %s: %v", key, err)
			}
		}
	}
	return lastErr
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// NewDestination selects the output destination from config: kafka when
// enabled, otherwise the configured file format under the output path,
// falling back to the console.
func NewDestination(cfg *models.Config) (OutputDestination, error) {
	if cfg.KafkaEnabled {
		return producers.NewSaramaProducer(cfg.KafkaBrokerList)
	}
	if cfg.OutputPath != "" {
		switch cfg.OutputFormat {
		case "parquet":
			return NewParquetOutput(cfg)
		case "json":
			return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
		case "csv":
			return NewCSVOutput(cfg.OutputPath, cfg.OutputFolder), nil
		default:
			return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
		}
	}
	return &ConsoleOutput{}, nil
}
