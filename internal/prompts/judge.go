package prompts

import (
	"fmt"
	"strings"

	"github.com/atamiles/vlures-bench/pkg/models"
)

// judgeTaskInstructions gives the judge a one-line description of what the
// VLM was asked to do, one per task.
var judgeTaskInstructions = map[int]string{
	1: "Analyze the image and list objects prominently visible.",
	2: "Describe the overall scene in the image, including the setting and any activities taking place.",
	3: "Identify interactions or relationships between objects or entities in the image.",
	4: "Divide the image into semantic regions and describe the contents of each.",
	5: "Provide a detailed natural language description of what is happening in the image.",
	6: "Extract the parts of the text that closely match or directly reference entities, objects, or scenes depicted in the image.",
	7: "Identify which parts of the text are not relevant to or not represented in the image.",
	8: "Identify specific named locations mentioned in the text and visually identifiable in the image.",
}

// JudgeTaskInstruction returns the judge-facing description for a task.
func JudgeTaskInstruction(task int) (string, error) {
	instr, ok := judgeTaskInstructions[task]
	if !ok {
		return "", fmt.Errorf("no judge instruction for task %d", task)
	}
	return instr, nil
}

// JudgeInput carries everything the judge prompt needs for one item.
type JudgeInput struct {
	ID            string
	Response      string
	Task          int
	Language      string
	Setting       models.PromptSetting
	TextContent   string
	ImageFilename string
}

// JudgePrompt renders the scoring prompt for a single VLM response. The judge
// is asked for a bare JSON object like {"score": 85} and nothing else.
func JudgePrompt(in JudgeInput) (string, error) {
	instr, err := JudgeTaskInstruction(in.Task)
	if err != nil {
		return "", err
	}
	setting := strings.ReplaceAll(string(in.Setting), "_", " ")

	var b strings.Builder
	fmt.Fprintf(&b, "You are a meticulous evaluator of Vision-Language AI responses. Your task is to evaluate the following VLM response.\n\n")
	fmt.Fprintf(&b, "- **Task**: %q\n", instr)
	fmt.Fprintf(&b, "- **Language**: %s\n", in.Language)
	fmt.Fprintf(&b, "- **Setting**: %s\n\n", setting)
	fmt.Fprintf(&b, "The response was generated based on this input:\n")
	fmt.Fprintf(&b, "- **Image File**: %s\n", in.ImageFilename)
	fmt.Fprintf(&b, "- **Associated Text**: %q\n\n", in.TextContent)
	fmt.Fprintf(&b, "**VLM Response to Evaluate (ID: %s):**\n%q\n\n", in.ID, in.Response)
	b.WriteString(`---
**Evaluation Criteria:**
Please rate the quality of this response on a scale from 0 (lowest quality) to 100 (highest quality) based on:
1.  **Accuracy**: Is the response factually correct and logically sound?
2.  **Helpfulness**: Does it directly and clearly address the task?
3.  **Linguistic Quality**: Is the response coherent, natural, and well-written?

**Instructions:**
- Remain objective and do not let response length influence your judgment.
- Be strict in your scoring; a perfect score should be reserved for exceptional responses.
- Your entire output must be ONLY a single, valid JSON object with the score.

**Example Output:**
{"score": 85}
`)
	return b.String(), nil
}
