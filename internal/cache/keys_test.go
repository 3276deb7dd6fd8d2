package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quiz",
			objectType:  "content",
			identifier:  "01J0QUIZ",
			expectedKey: "quizquest:quiz:content:01J0QUIZ",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "user",
			objectType:  "profile",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "quizquest:user:profile:123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "user",
			objectType:  "attempts",
			identifier:  "123",
			paramsKey:   []string{"page1"},
			expectedKey: "quizquest:user:attempts:123:page1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "user",
			objectType:  "attempts",
			identifier:  "123",
			paramsKey:   []string{"limit10", "offset20"},
			expectedKey: "quizquest:user:attempts:123:limit10_offset20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
