package service

import (
	"context"
	"fmt"
	"strings"

	"compogen/internal/entity"
)

// MockGenerator serves canned component templates selected by keyword
// matching on the prompt. It never fails, which makes it the terminal
// fallback for the AI endpoints.
type MockGenerator struct {
	clock Clock
}

func NewMockGenerator(clock Clock) *MockGenerator {
	if clock == nil {
		clock = RealClock{}
	}
	return &MockGenerator{clock: clock}
}

func (g *MockGenerator) GenerateComponent(_ context.Context, prompt string, _ string) (*GenerateResult, error) {
	lowered := strings.ToLower(prompt)

	var jsx, css, componentType string
	switch {
	case strings.Contains(lowered, "navbar") || strings.Contains(lowered, "nav"):
		jsx, css = navbarJSX, navbarCSS
		componentType = "navigation"
	case strings.Contains(lowered, "card") || strings.Contains(lowered, "profile"):
		jsx, css = profileCardJSX, profileCardCSS
		componentType = "card"
	default:
		jsx = fmt.Sprintf(counterJSX, prompt)
		css = counterCSS
		componentType = "functional"
	}

	return &GenerateResult{
		JSX: jsx,
		CSS: css,
		Metadata: GenerationMetadata{
			ComponentType:   componentType,
			Dependencies:    []string{"react"},
			EstimatedTokens: len(strings.Fields(jsx)) + len(strings.Fields(css)),
			Prompt:          prompt,
		},
	}, nil
}

func (g *MockGenerator) Chat(_ context.Context, message string, history []entity.ChatMessage) (*ChatReply, error) {
	lowered := strings.ToLower(message)

	var content string
	switch {
	case strings.Contains(lowered, "help"):
		content = "I can generate React components from a description. Try asking for a navbar, a profile card, or any component you have in mind."
	case strings.Contains(lowered, "thank"):
		content = "You're welcome! Ask me to refine the component or create something new whenever you're ready."
	case len(history) == 0:
		content = fmt.Sprintf("I understand you want to create: %q. I've generated a React component based on your request. You can see the live preview and code above. Feel free to ask me to refine it or create something else!", message)
	default:
		content = fmt.Sprintf("Got it. I've updated the component based on: %q. Let me know if you'd like further changes.", message)
	}

	return &ChatReply{
		Role:      entity.ChatRoleAssistant,
		Content:   content,
		Timestamp: g.clock.Now(),
	}, nil
}

func (g *MockGenerator) RefineCode(_ context.Context, current entity.GeneratedCode, instructions string) (*RefineResult, error) {
	lowered := strings.ToLower(instructions)
	jsx := current.JSX
	css := current.CSS
	var changes []string

	if strings.Contains(lowered, "color") || strings.Contains(lowered, "gradient") {
		css += "\n\n/* refined: gradient accent */\n.generated-component, .custom-navbar, .profile-card {\n  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);\n  color: white;\n}"
		changes = append(changes, "applied gradient color scheme")
	}
	if strings.Contains(lowered, "animation") || strings.Contains(lowered, "animate") {
		css += "\n\n@keyframes fadeIn {\n  from { opacity: 0; transform: translateY(8px); }\n  to { opacity: 1; transform: translateY(0); }\n}\n.generated-component, .custom-navbar, .profile-card {\n  animation: fadeIn 0.4s ease;\n}"
		changes = append(changes, "added fade-in animation")
	}
	if strings.Contains(lowered, "shadow") {
		css += "\n\n.generated-component, .custom-navbar, .profile-card {\n  box-shadow: 0 10px 30px rgba(0,0,0,0.15);\n}"
		changes = append(changes, "deepened box shadow")
	}
	if strings.Contains(lowered, "round") {
		css += "\n\n.generated-component, .custom-navbar, .profile-card {\n  border-radius: 16px;\n}"
		changes = append(changes, "rounded corners")
	}

	if len(changes) == 0 {
		css += "\n\n/* refined: general polish */\n.generated-component, .custom-navbar, .profile-card {\n  transition: all 0.3s ease;\n}"
		changes = append(changes, "general style polish")
	}

	return &RefineResult{JSX: jsx, CSS: css, Changes: changes}, nil
}

const navbarJSX = `import React, { useState } from 'react';

const CustomNavbar = () => {
  const [isMenuOpen, setIsMenuOpen] = useState(false);

  return (
    <nav className="custom-navbar">
      <div className="nav-container">
        <a href="/" className="nav-brand">YourBrand</a>
        <div className={isMenuOpen ? 'nav-menu active' : 'nav-menu'}>
          <a href="/about" className="nav-link">About</a>
          <a href="/features" className="nav-link">Features</a>
          <a href="/contact" className="nav-link">Contact</a>
        </div>
        <button className="nav-toggle" onClick={() => setIsMenuOpen(!isMenuOpen)}>
          <span></span>
          <span></span>
          <span></span>
        </button>
      </div>
    </nav>
  );
};

export default CustomNavbar;`

const navbarCSS = `.custom-navbar {
  background: white;
  box-shadow: 0 2px 10px rgba(0,0,0,0.1);
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  z-index: 1000;
}

.nav-container {
  max-width: 1200px;
  margin: 0 auto;
  padding: 0 20px;
  display: flex;
  align-items: center;
  justify-content: space-between;
  height: 70px;
}

.nav-brand {
  font-weight: 700;
  font-size: 1.3rem;
  color: #333;
  text-decoration: none;
}

.nav-menu {
  display: flex;
  gap: 30px;
}

.nav-link {
  color: #333;
  text-decoration: none;
  font-weight: 500;
  transition: color 0.3s ease;
}

.nav-link:hover {
  color: #667eea;
}

.nav-toggle {
  display: none;
}`

const profileCardJSX = `import React from 'react';

const ProfileCard = ({ name, role, avatar, bio }) => {
  return (
    <div className="profile-card">
      <div className="card-header">
        <img src={avatar || 'https://via.placeholder.com/80'} alt={name} className="avatar" />
        <div className="user-info">
          <h3 className="name">{name || 'John Doe'}</h3>
          <p className="role">{role || 'Software Developer'}</p>
        </div>
      </div>
      <div className="card-body">
        <p className="bio">{bio || 'Passionate developer creating amazing user experiences.'}</p>
      </div>
      <div className="card-footer">
        <button className="contact-btn">Contact</button>
        <button className="follow-btn">Follow</button>
      </div>
    </div>
  );
};

export default ProfileCard;`

const profileCardCSS = `.profile-card {
  background: white;
  border-radius: 12px;
  padding: 24px;
  max-width: 340px;
  box-shadow: 0 4px 20px rgba(0,0,0,0.08);
}

.card-header {
  display: flex;
  align-items: center;
  gap: 16px;
}

.avatar {
  width: 80px;
  height: 80px;
  border-radius: 50%;
  object-fit: cover;
}

.name {
  margin: 0;
  color: #333;
}

.role {
  margin: 4px 0 0;
  color: #888;
  font-size: 0.9rem;
}

.bio {
  margin: 16px 0;
  color: #555;
  line-height: 1.5;
}

.card-footer {
  display: flex;
  gap: 12px;
}

.contact-btn, .follow-btn {
  flex: 1;
  padding: 10px 0;
  border: none;
  border-radius: 8px;
  font-weight: 600;
  cursor: pointer;
}

.contact-btn {
  background: #667eea;
  color: white;
}

.follow-btn {
  background: #f0f0f5;
  color: #333;
}`

const counterJSX = `import React, { useState } from 'react';

const GeneratedComponent = () => {
  const [count, setCount] = useState(0);

  return (
    <div className="generated-component">
      <h2>Generated Component</h2>
      <p>This component was generated based on your request: %q</p>
      <div className="counter-section">
        <p>Count: {count}</p>
        <button onClick={() => setCount(count + 1)} className="counter-btn">Increment</button>
        <button onClick={() => setCount(0)} className="reset-btn">Reset</button>
      </div>
    </div>
  );
};

export default GeneratedComponent;`

const counterCSS = `.generated-component {
  padding: 24px;
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  border-radius: 12px;
  color: white;
  text-align: center;
}

.counter-section {
  margin-top: 16px;
}

.counter-btn, .reset-btn {
  margin: 8px;
  padding: 8px 16px;
  border-radius: 6px;
  border: none;
  background: white;
  color: #667eea;
  font-weight: 600;
  cursor: pointer;
}`
