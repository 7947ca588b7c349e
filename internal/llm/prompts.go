package llm

import "fmt"

const systemInstruction = `You are a world-class mindset coach. You turn limiting beliefs into empowering ones using a framework of 3 "brains" (Logic, Emotion, Animal) and the 12 English tenses. Every new belief must be positive, actionable, and directly counter the user's original statement by reusing the user's own words. Provide a Vietnamese translation for every belief.`

const transformPrompt = `Based on the user's limiting belief, generate 15 empowering beliefs for large-scale growth.

**User's Limiting Belief:** "%s"

**Instructions:**
1. **Reuse Keywords:** Pick out the key nouns, verbs and concepts of the user's belief and weave those exact words into the new beliefs so they feel personal.
2. **Framework:** Generate exactly 15 beliefs, split as follows:
   * **5 for the Logic Brain:** reframe the situation logically and find evidence inside the limiting belief that supports large-scale success.
   * **5 for the Emotion Brain:** connect the emotions of the original belief to the desired outcome.
   * **5 for the Animal Brain:** focus on instinct and simple, repeatable actions. Treat "scaling" as a verb.
3. **Use 12 English Tenses:** spread the 12 English tenses across the 15 beliefs (past, present and future; simple, continuous, perfect and perfect continuous). Label each belief with the tense it uses, e.g. "Present Simple", "Past Perfect", "Future Continuous".
4. **Translate:** give a Vietnamese translation for each English belief.
5. **Output Format:** return only JSON matching the provided schema, with the arrays "logic", "emotion" and "animal".
`

// SystemInstruction returns the instruction sent alongside every transformation prompt.
func SystemInstruction() string {
	return systemInstruction
}

// TransformPrompt embeds the limiting belief verbatim into the transformation prompt.
func TransformPrompt(limitingBelief string) string {
	return fmt.Sprintf(transformPrompt, limitingBelief)
}
