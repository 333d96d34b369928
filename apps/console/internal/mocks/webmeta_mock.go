package mocks

import (
	"admin.townguide.app/apps/console/pkg/webmeta"
)

func NewMockWebMetaClient() webmeta.Client {
	return &MockWebMetaClient{}
}

type MockWebMetaClient struct{}

func (m *MockWebMetaClient) GetPageMeta(_ string) (*webmeta.PageMeta, error) {
	return &webmeta.PageMeta{
		Title:       "Harbor Market",
		Description: "A weekly market on the old harbor pier.",
	}, nil
}
