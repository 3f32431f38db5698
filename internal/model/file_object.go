package model

type FileObject interface {
	GetFilename() string
	GetParent() string
	GetContent() []byte
}

type Thumbnail struct {
	Filename    string
	ContentType string
	Content     []byte

	// Folder the object is grouped under, usually the upload date.
	Parent string
}

func (t Thumbnail) GetFilename() string {
	return t.Filename
}

func (t Thumbnail) GetContent() []byte {
	return t.Content
}

func (t Thumbnail) GetParent() string {
	return t.Parent
}
