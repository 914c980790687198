package storage

import "testing"

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty endpoint",
			config:  Config{Endpoint: "", Bucket: "news"},
			wantErr: true,
		},
		{
			name:    "empty bucket",
			config:  Config{Endpoint: "localhost:9000", Bucket: ""},
			wantErr: true,
		},
		{
			name: "valid config",
			config: Config{
				Endpoint:        "localhost:9000",
				Bucket:          "news",
				AccessKeyID:     "minioadmin",
				SecretAccessKey: "minioadmin",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_DefaultObjectName(t *testing.T) {
	client, err := New(Config{Endpoint: "localhost:9000", Bucket: "news"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.objectName != "data/news.json" {
		t.Errorf("objectName = %q, want data/news.json", client.objectName)
	}
	if client.Bucket() != "news" {
		t.Errorf("Bucket() = %q, want news", client.Bucket())
	}
}
