package extractor

import (
	"fmt"
	"io"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	jsonmarshaller "github.com/mri-tools/geprotocol/pkg/io/marshaller/json"
	yamlmarshaller "github.com/mri-tools/geprotocol/pkg/io/marshaller/yaml"
	"github.com/mri-tools/geprotocol/pkg/svc/dicomreader"
	"github.com/mri-tools/geprotocol/pkg/svc/payload"
	"github.com/mri-tools/geprotocol/pkg/svc/protocol"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Extractor loads protocol mappings from files on Fs.
type Extractor struct {
	Fs      afero.Fs
	Tag     v1alpha1.Tag
	Decoder *payload.Decoder
	Logger  logrus.FieldLogger
}

// New creates an extractor configured from cfg.
func New(fs afero.Fs, cfg *v1alpha1.Config, logger logrus.FieldLogger) *Extractor {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Extractor{
		Fs:  fs,
		Tag: cfg.Element,
		Decoder: &payload.Decoder{
			HeaderLength: cfg.HeaderLength,
			Encoding:     cfg.Encoding,
			Logger:       logger,
		},
		Logger: logger,
	}
}

// ExtractFile reads the protocol block stored in the configured element of
// the DICOM file at path.
func (e *Extractor) ExtractFile(path string) (*protocol.Mapping, error) {
	file, err := e.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	return e.extract(path, file)
}

// Load reads a mapping from path in the given format. InputFormatAuto probes
// for a DICOM signature and treats anything else as LxProtocol text.
func (e *Extractor) Load(path string, format v1alpha1.InputFormat) (*protocol.Mapping, error) {
	file, err := e.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	if format == v1alpha1.InputFormatAuto || format == "" {
		format, err = sniff(file)
		if err != nil {
			return nil, fmt.Errorf("failed to probe %s: %w", path, err)
		}

		e.Logger.WithFields(logrus.Fields{"path": path, "format": format}).Debug("detected input format")
	}

	switch format {
	case v1alpha1.InputFormatDICOM:
		return e.extract(path, file)
	case v1alpha1.InputFormatLx:
		return e.loadLx(path, file)
	case v1alpha1.InputFormatJSON:
		return loadDocument(path, file, jsonmarshaller.NewMarshaller[*protocol.Mapping](0).Unmarshal)
	case v1alpha1.InputFormatYAML:
		return loadDocument(path, file, yamlmarshaller.NewMarshaller[*protocol.Mapping]().Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %q", v1alpha1.ErrInvalidInputFormat, format)
	}
}

func sniff(file afero.File) (v1alpha1.InputFormat, error) {
	isDICOM, err := dicomreader.HasSignature(file)
	if err != nil {
		return "", err
	}

	if isDICOM {
		return v1alpha1.InputFormatDICOM, nil
	}

	return v1alpha1.InputFormatLx, nil
}

func (e *Extractor) extract(path string, file afero.File) (*protocol.Mapping, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dataset, err := dicomreader.ReadDataset(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	raw, err := dicomreader.LocateElement(dataset, e.Tag)
	if err != nil {
		return nil, err
	}

	logger := e.Logger.WithFields(logrus.Fields{"path": path, "tag": e.Tag.String()})
	logger.WithField("bytes", len(raw)).Debug("located protocol element")

	text, err := e.Decoder.Decode(raw)
	if err != nil {
		return nil, err
	}

	mapping, err := protocol.ParseInline(text)
	if err != nil {
		return nil, err
	}

	logger.WithField("entries", mapping.Len()).Debug("parsed protocol block")

	return mapping, nil
}

func (e *Extractor) loadLx(path string, file afero.File) (*protocol.Mapping, error) {
	data, err := afero.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := e.Decoder.DecodeText(data)
	if err != nil {
		return nil, &payload.DecodeError{Stage: payload.StageDecode, Err: fmt.Errorf("%s: %w", path, err)}
	}

	mapping, err := protocol.ParseIndentedSet(text)
	if err != nil {
		return nil, err
	}

	e.Logger.WithFields(logrus.Fields{"path": path, "entries": mapping.Len()}).Debug("parsed LxProtocol file")

	return mapping, nil
}

func loadDocument(
	path string,
	file afero.File,
	unmarshal func([]byte, **protocol.Mapping) error,
) (*protocol.Mapping, error) {
	data, err := afero.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var mapping *protocol.Mapping

	err = unmarshal(data, &mapping)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if mapping == nil {
		mapping = protocol.NewMapping()
	}

	return mapping, nil
}
