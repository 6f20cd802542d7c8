package v1

import (
	"encoding/json"
	"fmt"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

type DocumentCategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

func (c DocumentCategoryDTO) Identifier() string { return c.ID }

type DocumentCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type DocumentCategoryEndpoint struct {
	transport *Transport
}

// document categories wrap everything in {data}
type documentCategoryListEnvelope struct {
	Data []DocumentCategoryDTO `json:"data"`
}

type documentCategoryEnvelope struct {
	Data DocumentCategoryDTO `json:"data"`
}

// List returns every category; the feature is small enough that the API
// does not paginate it.
func (ep *DocumentCategoryEndpoint) List() (*common.ListResult[DocumentCategoryDTO], error) {
	resp, err := ep.transport.Get("/document-categories", nil)
	if err != nil {
		return nil, err
	}

	var envelope documentCategoryListEnvelope
	if err := json.Unmarshal(resp.Data, &envelope); err != nil {
		return nil, err
	}

	return &common.ListResult[DocumentCategoryDTO]{Items: envelope.Data}, nil
}

func (ep *DocumentCategoryEndpoint) Create(in DocumentCategoryInput) (*DocumentCategoryDTO, error) {
	resp, err := ep.transport.Post("/document-categories", in, nil)
	if err != nil {
		return nil, err
	}
	return decodeDocumentCategory(resp.Data)
}

func (ep *DocumentCategoryEndpoint) Update(id string, in DocumentCategoryInput) (*DocumentCategoryDTO, error) {
	resp, err := ep.transport.Patch(fmt.Sprintf("/document-categories/%s", id), in, nil)
	if err != nil {
		return nil, err
	}
	return decodeDocumentCategory(resp.Data)
}

func (ep *DocumentCategoryEndpoint) Delete(id string) error {
	_, err := ep.transport.Delete(fmt.Sprintf("/document-categories/%s", id))
	return err
}

func decodeDocumentCategory(data []byte) (*DocumentCategoryDTO, error) {
	var envelope documentCategoryEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
