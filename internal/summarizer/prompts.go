package summarizer

const defaultSummaryPrompt = "You are an expert meeting summarizer. Your task is to read the provided meeting transcript and generate a concise summary that captures the key points discussed, decisions made, and action items assigned. The summary should be clear, well-structured, and easy to understand."

const defaultActionItemPrompt = `Extract all action items from the following meeting transcript. Identify individual
and team-wide action items in the following format:

{
  "individual_actions": {
    "Alice": ["Task 1", "Task 2"],
    "Bob": ["Task 1"]
  },
  "team_actions": ["Task 1", "Task 2"],
  "entities": ["Alice", "Bob"]
}

Only include what is explicitly mentioned. Do not infer. You must respond strictly in
valid JSON format, with no extra text or commentary.`
